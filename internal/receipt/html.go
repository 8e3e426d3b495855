package receipt

import (
	"html/template"
	"io"
)

var htmlTemplate = template.Must(template.New("recibo").Parse(`<!DOCTYPE html>
<html>
<head>
  <meta charset="UTF-8">
  <title>Recibo - {{.PasseioNome}}</title>
  <style>
    body { font-family: Arial, sans-serif; margin: 0; padding: 20px; }
    .header { text-align: center; border-bottom: 2px solid #f97316; padding-bottom: 20px; margin-bottom: 30px; }
    .logo { color: #f97316; font-size: 28px; font-weight: bold; }
    .info-grid { display: grid; grid-template-columns: 1fr 1fr; gap: 20px; margin-bottom: 30px; }
    .info-card { border: 1px solid #e5e7eb; padding: 15px; border-radius: 8px; }
    .info-title { font-weight: bold; color: #374151; margin-bottom: 10px; }
    .total { text-align: center; background: #f9fafb; padding: 20px; border-radius: 8px; margin-top: 30px; }
    .total-value { font-size: 24px; font-weight: bold; color: #f97316; }
    .footer { text-align: center; margin-top: 40px; color: #6b7280; font-size: 14px; }
    @media print { body { margin: 0; } }
  </style>
</head>
<body>
  <div class="header">
    <div class="logo">ESSENTIA TOURS</div>
    <p>Recibo de Reserva #{{.Numero}}</p>
  </div>

  <div class="info-grid">
    <div class="info-card">
      <div class="info-title">Informações do Passeio</div>
      <p><strong>Passeio:</strong> {{.PasseioNome}}</p>
      <p><strong>Data:</strong> {{.DataPasseioFmt}}</p>
      <p><strong>Pessoas:</strong> {{.NumeroPessoas}}</p>
      <p><strong>Status:</strong> {{.Status}}</p>
    </div>

    <div class="info-card">
      <div class="info-title">Dados do Cliente</div>
      <p><strong>Nome:</strong> {{.ClienteNome}}</p>
      <p><strong>Email:</strong> {{.ClienteEmail}}</p>
      <p><strong>Telefone:</strong> {{.ClienteTelefone}}</p>
      <p><strong>Data da Reserva:</strong> {{.CriadoEmFmt}}</p>
    </div>
  </div>
{{if .Observacoes}}
  <div class="info-card">
    <div class="info-title">Observações</div>
    <p>{{.Observacoes}}</p>
  </div>
{{end}}
  <div class="total">
    <p>Valor Total da Reserva</p>
    <div class="total-value">{{.ValorFmt}}</div>
  </div>

  <div class="footer">
    <p>Este é um recibo oficial da Essentia Tours</p>
    <p>Em caso de dúvidas, entre em contato conosco</p>
    <p>Gerado em: {{.GeradoEmFmt}}</p>
  </div>
</body>
</html>
`))

func RenderHTML(w io.Writer, d Data) error {
	return htmlTemplate.Execute(w, d)
}
