package receipt

import (
	"fmt"
	"io"

	"github.com/jung-kurt/gofpdf/v2"
)

// RenderPDF writes the receipt as a one page A4 PDF.
func RenderPDF(w io.Writer, d Data) error {
	pdf := gofpdf.New("P", "mm", "A4", "")
	tr := pdf.UnicodeTranslatorFromDescriptor("")
	pdf.SetTitle(tr("Recibo - "+d.PasseioNome), false)
	pdf.AddPage()

	// -------- Cabeçalho --------
	pdf.SetTextColor(249, 115, 22)
	pdf.SetFont("Arial", "B", 22)
	pdf.CellFormat(0, 12, Brand, "", 1, "C", false, 0, "")
	pdf.SetTextColor(55, 65, 81)
	pdf.SetFont("Arial", "", 12)
	pdf.CellFormat(0, 8, tr(fmt.Sprintf("Recibo de Reserva #%s", d.Numero())), "B", 1, "C", false, 0, "")
	pdf.Ln(6)

	section := func(title string, rows [][2]string) {
		pdf.SetFont("Arial", "B", 13)
		pdf.CellFormat(0, 9, tr(title), "", 1, "L", false, 0, "")
		for _, r := range rows {
			pdf.SetFont("Arial", "B", 11)
			pdf.CellFormat(45, 7, tr(r[0]+":"), "", 0, "L", false, 0, "")
			pdf.SetFont("Arial", "", 11)
			pdf.CellFormat(0, 7, tr(r[1]), "", 1, "L", false, 0, "")
		}
		pdf.Ln(4)
	}

	section("Informações do Passeio", [][2]string{
		{"Passeio", d.PasseioNome},
		{"Data", d.DataPasseioFmt()},
		{"Pessoas", fmt.Sprintf("%d", d.NumeroPessoas)},
		{"Status", d.Status},
	})
	section("Dados do Cliente", [][2]string{
		{"Nome", d.ClienteNome},
		{"Email", d.ClienteEmail},
		{"Telefone", d.ClienteTelefone},
		{"Data da Reserva", d.CriadoEmFmt()},
	})

	if d.Observacoes != "" {
		pdf.SetFont("Arial", "B", 13)
		pdf.CellFormat(0, 9, tr("Observações"), "", 1, "L", false, 0, "")
		pdf.SetFont("Arial", "", 11)
		pdf.MultiCell(0, 6, tr(d.Observacoes), "", "L", false)
		pdf.Ln(4)
	}

	// -------- Total --------
	pdf.SetFillColor(249, 250, 251)
	pdf.SetFont("Arial", "", 12)
	pdf.CellFormat(0, 9, "Valor Total da Reserva", "", 1, "C", true, 0, "")
	pdf.SetTextColor(249, 115, 22)
	pdf.SetFont("Arial", "B", 18)
	pdf.CellFormat(0, 12, tr(d.ValorFmt()), "", 1, "C", true, 0, "")

	// -------- Rodapé --------
	pdf.Ln(12)
	pdf.SetTextColor(107, 114, 128)
	pdf.SetFont("Arial", "", 10)
	for _, line := range []string{
		"Este é um recibo oficial da Essentia Tours",
		"Em caso de dúvidas, entre em contato conosco",
		"Gerado em: " + d.GeradoEmFmt(),
	} {
		pdf.CellFormat(0, 6, tr(line), "", 1, "C", false, 0, "")
	}

	return pdf.Output(w)
}
