package report

import (
	"bytes"
	"context"
	"html/template"

	"FinMate/internal/domain/feasibility"

	"github.com/oklog/ulid/v2"
)

// O relatorio e entregue como HTML pronto para impressao; a conversao para
// PDF acontece no cliente.
var reportTemplate = template.Must(template.New("report").Funcs(template.FuncMap{
	"money": feasibility.FormatAmount,
}).Parse(`<!DOCTYPE html>
<html>
<head>
<meta charset="utf-8">
<title>Relatorio de despesas</title>
<style>
body { font-family: Helvetica, Arial, sans-serif; margin: 24px; color: #222; }
h1 { font-size: 20px; }
h2 { font-size: 16px; margin-top: 28px; }
table { border-collapse: collapse; width: 100%; margin-top: 8px; }
th, td { border: 1px solid #ccc; padding: 6px 10px; text-align: left; }
th { background: #f2f2f2; }
td.amount { text-align: right; }
tr.total td { font-weight: bold; }
p.highlight { color: #b00020; font-weight: bold; }
</style>
</head>
<body>
<h1>Relatorio de despesas</h1>
{{if not .Reports}}<p>Nenhuma despesa registrada.</p>{{end}}
{{range .Reports}}
<h2>{{.Label}}</h2>
<table>
<tr><th>Categoria</th><th>Valor</th></tr>
{{range .Breakdown}}
<tr><td>{{.Name}}</td><td class="amount">{{money .Amount}}</td></tr>
{{end}}
<tr class="total"><td>Total</td><td class="amount">{{money .Total}}</td></tr>
</table>
<p class="highlight">Maior gasto: {{.HighestCategory}} ({{money .HighestAmount}})</p>
{{end}}
</body>
</html>
`))

// RenderHTML monta o documento com todos os meses do usuario, do mais
// recente para o mais antigo.
func (s *Service) RenderHTML(ctx context.Context, userID ulid.ULID) (string, error) {
	reports, err := s.GetMonthlyReports(ctx, userID)
	if err != nil {
		return "", err
	}

	var buf bytes.Buffer
	if err := reportTemplate.Execute(&buf, map[string]interface{}{"Reports": reports}); err != nil {
		return "", err
	}
	return buf.String(), nil
}
