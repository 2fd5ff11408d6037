// Package pdf genera el recibo en PDF de un pedido.
//
// Layout de la página A4:
//
//	┌─────────────────────────────────────────────────────────────┐
//	│  HEADER: OldSchoolTees  │  N° Pedido + Fecha + Estado       │
//	│  ─────────────────────────────────────────────────────────  │
//	│  CLIENTE: Nombre + Email                                    │
//	│  ENVÍO: Dirección + Estado + Código de seguimiento          │
//	│  ─────────────────────────────────────────────────────────  │
//	│  TABLA: Cant | Producto | P.Unit | Desc. | Subtotal         │
//	│  ─────────────────────────────────────────────────────────  │
//	│  TOTALES: Descuentos / TOTAL                                │
//	│  FOOTER: método y estado de pago + leyenda                  │
//	└─────────────────────────────────────────────────────────────┘
package pdf

import (
	"fmt"

	maroto "github.com/johnfercher/maroto/v2"
	"github.com/johnfercher/maroto/v2/pkg/components/col"
	"github.com/johnfercher/maroto/v2/pkg/components/line"
	"github.com/johnfercher/maroto/v2/pkg/components/row"
	"github.com/johnfercher/maroto/v2/pkg/components/text"
	"github.com/johnfercher/maroto/v2/pkg/config"
	"github.com/johnfercher/maroto/v2/pkg/consts/align"
	"github.com/johnfercher/maroto/v2/pkg/consts/fontstyle"
	"github.com/johnfercher/maroto/v2/pkg/consts/pagesize"
	"github.com/johnfercher/maroto/v2/pkg/core"
	"github.com/johnfercher/maroto/v2/pkg/props"
	"github.com/shopspring/decimal"

	"github.com/Jitsben-Andree/OldSchoolTees-Deploy/internal/domain/entity"
)

// ── Paleta de colores ─────────────────────────────────────────────────────────

var (
	colorPrimary = &props.Color{Red: 20, Green: 40, Blue: 90}
	colorGray    = &props.Color{Red: 100, Green: 100, Blue: 100}
)

// ── Generator ─────────────────────────────────────────────────────────────────

// MarotoReciboGenerator implementa pedido.ReciboGenerator usando Maroto v2.
type MarotoReciboGenerator struct{}

// NewMarotoReciboGenerator construye el generador.
func NewMarotoReciboGenerator() *MarotoReciboGenerator { return &MarotoReciboGenerator{} }

// GenerarRecibo genera el PDF del pedido y devuelve sus bytes.
func (g *MarotoReciboGenerator) GenerarRecibo(
	pedido *entity.Pedido,
	detalles []*entity.DetallePedido,
	usuario *entity.Usuario,
	pago *entity.Pago,
	envio *entity.Envio,
) ([]byte, error) {
	cfg := config.NewBuilder().
		WithPageSize(pagesize.A4).
		WithLeftMargin(10).WithRightMargin(10).
		WithTopMargin(10).WithBottomMargin(10).
		WithDefaultFont(&props.Font{Family: "helvetica", Size: 9}).
		WithTitle("Recibo de pedido", true).
		WithAuthor("OldSchoolTees", true).
		Build()

	m := maroto.New(cfg)

	m.AddRows(headerRow(pedido))
	m.AddRows(line.NewRow(1, props.Line{Color: colorPrimary, Thickness: 0.5}))
	m.AddRows(clienteRow(usuario))
	if envio != nil {
		m.AddRows(envioRow(envio))
	}
	m.AddRows(line.NewRow(1, props.Line{Color: colorPrimary, Thickness: 0.3}))

	m.AddRows(tableHeaderRow())
	for _, r := range tableDetalleRows(detalles) {
		m.AddRows(r)
	}

	m.AddRows(line.NewRow(1, props.Line{Color: colorPrimary, Thickness: 0.3}))
	m.AddRows(totalesRow(pedido, detalles))

	m.AddRows(line.NewRow(3))
	m.AddRows(line.NewRow(1, props.Line{Color: colorGray, Thickness: 0.3}))
	for _, r := range footerRows(pago) {
		m.AddRows(r)
	}

	doc, err := m.Generate()
	if err != nil {
		return nil, fmt.Errorf("pdf: generar recibo: %w", err)
	}
	return doc.GetBytes(), nil
}

// ── Secciones ─────────────────────────────────────────────────────────────────

// headerRow: marca (izq) y N° pedido + fecha + estado (der).
func headerRow(pedido *entity.Pedido) core.Row {
	fecha := pedido.Fecha.Format("02/01/2006 15:04")

	return row.New(18).Add(
		col.New(7).Add(
			text.New("OldSchoolTees", props.Text{
				Style: fontstyle.Bold, Size: 13, Color: colorPrimary, Top: 1,
			}),
			text.New("Camisetas retro de fútbol", props.Text{
				Size: 9, Top: 9, Color: colorGray,
			}),
		),
		col.New(5).Add(
			text.New("RECIBO DE PEDIDO", props.Text{
				Style: fontstyle.Bold, Size: 8, Align: align.Right,
				Color: colorPrimary, Top: 1,
			}),
			text.New("#"+pedido.ID, props.Text{
				Style: fontstyle.Bold, Size: 9, Align: align.Right, Top: 7,
			}),
			text.New(fmt.Sprintf("Fecha: %s   Estado: %s", fecha, pedido.Estado), props.Text{
				Size: 8, Align: align.Right, Top: 14, Color: colorGray,
			}),
		),
	)
}

// clienteRow: datos del comprador.
func clienteRow(usuario *entity.Usuario) core.Row {
	nombre, email := "—", "—"
	if usuario != nil {
		nombre, email = usuario.Nombre, usuario.Email
	}
	return row.New(12).Add(
		col.New(12).Add(
			text.New("CLIENTE", props.Text{
				Style: fontstyle.Bold, Size: 8, Color: colorPrimary, Top: 1,
			}),
			text.New(fmt.Sprintf("%s   |   %s", nombre, email),
				props.Text{Size: 8, Top: 7, Color: colorGray}),
		),
	)
}

// envioRow: dirección y estado del despacho.
func envioRow(envio *entity.Envio) core.Row {
	seguimiento := envio.CodigoSeguimiento
	if seguimiento == "" {
		seguimiento = "—"
	}
	return row.New(12).Add(
		col.New(12).Add(
			text.New("ENVÍO", props.Text{
				Style: fontstyle.Bold, Size: 8, Color: colorPrimary, Top: 1,
			}),
			text.New(fmt.Sprintf("Dirección: %s   |   Estado: %s   |   Seguimiento: %s",
				envio.Direccion, envio.Estado, seguimiento,
			), props.Text{Size: 8, Top: 7, Color: colorGray}),
		),
	)
}

// tableHeaderRow: cabecera de la tabla de líneas del pedido.
func tableHeaderRow() core.Row {
	h := func(label string, size int, a align.Type) core.Col {
		return col.New(size).Add(text.New(label, props.Text{
			Style: fontstyle.Bold, Size: 8, Align: a,
			Color: colorPrimary, Top: 2, Left: 1, Right: 1,
		}))
	}
	return row.New(8).Add(
		h("Cant.", 1, align.Center),
		h("Producto", 5, align.Left),
		h("P.Unit.", 2, align.Right),
		h("Desc.", 2, align.Right),
		h("Subtotal", 2, align.Right),
	)
}

// tableDetalleRows: una fila por línea del pedido.
func tableDetalleRows(detalles []*entity.DetallePedido) []core.Row {
	result := make([]core.Row, 0, len(detalles))
	for _, d := range detalles {
		result = append(result, row.New(7).Add(
			col.New(1).Add(text.New(
				fmt.Sprintf("%d", d.Cantidad),
				props.Text{Size: 8, Align: align.Center, Top: 1},
			)),
			col.New(5).Add(text.New(
				d.NombreProducto,
				props.Text{Size: 8, Align: align.Left, Top: 1, Left: 1},
			)),
			col.New(2).Add(text.New(
				"S/ "+d.PrecioUnitario.StringFixed(2),
				props.Text{Size: 8, Align: align.Right, Top: 1, Right: 1},
			)),
			col.New(2).Add(text.New(
				"S/ "+d.MontoDescuento.StringFixed(2),
				props.Text{Size: 8, Align: align.Right, Top: 1, Right: 1},
			)),
			col.New(2).Add(text.New(
				"S/ "+d.Subtotal.StringFixed(2),
				props.Text{Size: 8, Align: align.Right, Top: 1, Right: 1},
			)),
		))
	}
	return result
}

// totalesRow: bloque de totales alineado a la derecha.
func totalesRow(pedido *entity.Pedido, detalles []*entity.DetallePedido) core.Row {
	descuentos := decimal.Zero
	for _, d := range detalles {
		descuentos = descuentos.Add(d.MontoDescuento)
	}

	label := func(s string) core.Component {
		return text.New(s, props.Text{
			Style: fontstyle.Bold, Size: 9, Align: align.Right, Right: 2,
		})
	}
	value := func(s string) core.Component {
		return text.New(s, props.Text{Size: 9, Align: align.Right, Right: 1})
	}
	grandLabel := func(s string) core.Component {
		return text.New(s, props.Text{
			Style: fontstyle.Bold, Size: 10, Align: align.Right,
			Color: colorPrimary, Right: 2, Top: 7,
		})
	}
	grandValue := func(s string) core.Component {
		return text.New(s, props.Text{
			Style: fontstyle.Bold, Size: 10, Align: align.Right,
			Color: colorPrimary, Right: 1, Top: 7,
		})
	}

	return row.New(18).Add(
		col.New(4),
		col.New(4).Add(
			label("Descuentos aplicados:"),
			grandLabel("TOTAL:"),
		),
		col.New(4).Add(
			value("S/ "+descuentos.StringFixed(2)),
			grandValue("S/ "+pedido.Total.StringFixed(2)),
		),
	)
}

// footerRows: método y estado de pago + leyenda.
func footerRows(pago *entity.Pago) []core.Row {
	metodo, estado := "—", "—"
	if pago != nil {
		metodo, estado = pago.Metodo, pago.Estado
	}
	return []core.Row{
		row.New(8).Add(col.New(12).Add(
			text.New(fmt.Sprintf("Pago: %s (%s)", metodo, estado), props.Text{
				Style: fontstyle.Bold, Size: 8, Color: colorPrimary, Top: 1,
			}),
		)),
		row.New(8).Add(col.New(12).Add(
			text.New(
				"Gracias por tu compra. Este recibo es un comprobante interno de OldSchoolTees "+
					"y no reemplaza un comprobante fiscal.",
				props.Text{Size: 6.5, Color: colorGray, Top: 2},
			),
		)),
	}
}
