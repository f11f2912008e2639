package http

import (
	"github.com/gofiber/fiber/v2"

	"github.com/almacenpro/rma-backend/internal/application/dto"
	"github.com/almacenpro/rma-backend/internal/application/inventario"
	"github.com/almacenpro/rma-backend/internal/application/productos"
	"github.com/almacenpro/rma-backend/internal/domain/entity"
	"github.com/almacenpro/rma-backend/internal/infrastructure/excel"
)

// InventarioHandler maneja el motor de conteo y reconciliación (protegido).
type InventarioHandler struct {
	uc          *inventario.UseCase
	productosUC *productos.UseCase
	exporter    *excel.InventarioExporter
}

// NewInventarioHandler construye el handler.
func NewInventarioHandler(uc *inventario.UseCase, productosUC *productos.UseCase, exporter *excel.InventarioExporter) *InventarioHandler {
	return &InventarioHandler{uc: uc, productosUC: productosUC, exporter: exporter}
}

// GuardarConteo PUT /api/inventario/conteo — aplica el conteo físico en
// batch. Valores nil se descartan; cero se persiste como NULL.
func (h *InventarioHandler) GuardarConteo(c *fiber.Ctx) error {
	var in dto.GuardarConteoRequest
	if err := c.BodyParser(&in); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(dto.Error("cuerpo inválido"))
	}
	n, err := h.uc.GuardarConteoFisico(in.Conteos)
	if err != nil {
		return respuestaError(c, err)
	}
	return c.JSON(dto.OK(dto.FilasAfectadasResponse{Afectadas: n}))
}

// ActualizarSistema PUT /api/inventario/sistema/:origen — sobrescribe la
// columna del origen (erp|full) por modelo, o la reinicia completa
// cuando accion == "borrar".
func (h *InventarioHandler) ActualizarSistema(c *fiber.Ctx) error {
	origen := entity.Origen(c.Params("origen"))
	var in dto.ActualizarStockRequest
	if err := c.BodyParser(&in); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(dto.Error("cuerpo inválido"))
	}
	if in.Accion == inventario.AccionBorrar {
		n, err := h.uc.ReiniciarStockSistema(origen)
		if err != nil {
			return respuestaError(c, err)
		}
		return c.JSON(dto.OKMensaje("stock reiniciado", dto.FilasAfectadasResponse{Afectadas: n}))
	}
	n, err := h.uc.ActualizarStockSistema(c.UserContext(), origen, in.Items)
	if err != nil {
		return respuestaError(c, err)
	}
	return c.JSON(dto.OK(dto.FilasAfectadasResponse{Afectadas: n}))
}

// Reagrupar PUT /api/inventario/grupo — asigna el grupo de conteo a los
// productos dados.
func (h *InventarioHandler) Reagrupar(c *fiber.Ctx) error {
	var in dto.ReagruparRequest
	if err := c.BodyParser(&in); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(dto.Error("cuerpo inválido"))
	}
	n, err := h.uc.ReagruparConteo(in.Grupo, in.ProductoIDs)
	if err != nil {
		return respuestaError(c, err)
	}
	return c.JSON(dto.OK(dto.FilasAfectadasResponse{Afectadas: n}))
}

// Exportar GET /api/inventario/exportar — planilla .xlsx del catálogo
// completo con sus stocks.
func (h *InventarioHandler) Exportar(c *fiber.Ctx) error {
	prods, err := h.productosUC.Todos()
	if err != nil {
		return respuestaError(c, err)
	}
	lista := make([]entity.Producto, 0, len(prods))
	for _, p := range prods {
		lista = append(lista, *p)
	}
	buf, err := h.exporter.Exportar(lista)
	if err != nil {
		return respuestaError(c, err)
	}
	c.Set(fiber.HeaderContentType, "application/vnd.openxmlformats-officedocument.spreadsheetml.sheet")
	c.Set(fiber.HeaderContentDisposition, `attachment; filename="inventario.xlsx"`)
	return c.SendStream(buf)
}
