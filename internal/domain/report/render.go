package report

import (
	"fmt"
	"html/template"
	"io"
)

var pageTmpl = template.Must(template.New("report").Parse(`<!DOCTYPE html>
<html>
<head>
<meta charset="utf-8">
<title>{{.Header.Title}} - {{.Header.ScheduleName}}</title>
<style>
body { font-family: sans-serif; color: #111; margin: 2em; }
header { display: flex; justify-content: space-between; border-bottom: 2px solid #111; padding-bottom: 1em; }
.alerts { border: 1px solid #fca5a5; background: #fef2f2; padding: 1em; margin: 1.5em 0; }
table { width: 100%; border-collapse: collapse; margin-bottom: 1.5em; }
th, td { border: 1px solid #e5e7eb; padding: .5em 1em; text-align: left; }
.box { width: 1.2em; height: 1.2em; border: 1px solid #9ca3af; margin: auto; }
footer { display: flex; justify-content: space-between; margin-top: 4em; font-size: .8em; }
.signature { border-top: 1px solid #111; width: 16em; text-align: center; padding-top: .5em; }
</style>
</head>
<body>
<header>
  <div><h1>{{.Header.Title}}</h1><h2>{{.Header.Subtitle}}</h2></div>
  <div>
    <p><strong>{{.Header.DateLabel}}:</strong> {{.Header.Date.Format "2006-01-02"}}</p>
    <p><small>{{.Header.ScheduleNameLabel}}</small><br>{{.Header.ScheduleName}}</p>
  </div>
</header>
{{with .Alerts}}
<section class="alerts">
  <h3>{{.Title}}</h3>
  <ul>{{range .Items}}<li>{{.}}</li>{{end}}</ul>
</section>
{{end}}
{{$cols := .Columns}}
{{range .Sections}}
<section>
  <h3>{{.Label}} <small>{{.TimeHint}}</small></h3>
  {{if .Rows}}
  <table>
    <thead><tr><th>{{$cols.Medication}}</th><th>{{$cols.Type}}</th><th>{{$cols.Instructions}}</th><th>{{$cols.Administered}}</th></tr></thead>
    <tbody>
    {{range .Rows}}<tr><td><strong>{{.Name}}</strong> {{.Dosage}}</td><td>{{.Category}}</td><td><em>{{.Instructions}}</em></td><td><div class="box"></div></td></tr>
    {{end}}
    </tbody>
  </table>
  {{else}}
  <p><em>{{.EmptyText}}</em></p>
  {{end}}
</section>
{{end}}
<footer>
  <p>{{.Footer.Disclaimer}}</p>
  <div class="signature">{{.Footer.SignatureLabel}}</div>
</footer>
</body>
</html>
`))

// RenderHTML escribe el documento como página imprimible.
func RenderHTML(w io.Writer, doc Document) error {
	if err := pageTmpl.Execute(w, doc); err != nil {
		return fmt.Errorf("render report: %w", err)
	}
	return nil
}
