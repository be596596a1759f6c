package answer

import "html/template"

var indexTemplate = template.Must(template.New("index").Parse(`<html>
  <head>
    <title>{{.Title}}</title>
  </head>
  <body>
<table border='1'>
<tr><th>Page</th><th>Clue</th><th>Answer</th></tr>
{{- range .Rows}}
<tr><td>{{.Page}}</td><td>{{.Clue}}</td><td><a href="{{.File}}">Answer</a></td></tr>
{{- end}}
</table>
  </body>
</html>
`))

var pageTemplate = template.Must(template.New("page").Parse(`<html>
  <head>
    <title>{{.Base}} Answer {{.Page}}</title>
  </head>
  <body>
<h2>{{.Base}} Page {{.Page}}</h2>
<h3>Quote</h3>
{{- range .Text}}
<br>{{.}}</br>
{{- end}}
<h3>Encrypted</h3>
{{- range .Puzzle}}
<br>{{.}}</br>
{{- end}}
<h3>Clue</h3>
<br>{{.Label}}</br>
<table border='1'>
<tr><th>Crypt</th><th>Clear</th></tr>
{{- range .Pairs}}
<tr><td>{{.Crypt}}</td><td>{{.Clear}}</td></tr>
{{- end}}
</table>
  </body>
</html>
`))
