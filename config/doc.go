// Package config 读取、规范化并校验小册子生成配置。
//
// 配置来自 TOML 文件（默认当前目录下的 booklet.toml），缺省值由 Default 提供；
// 命令行参数在此基础上覆盖。下游代码应只通过本包获取配置，以拿到统一小写的
// 版式名、去重后的输出格式列表以及明确的校验错误。
package config
