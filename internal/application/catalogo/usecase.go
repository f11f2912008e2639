package catalogo

import (
	"time"

	"github.com/almacenpro/rma-backend/internal/application/dto"
	"github.com/almacenpro/rma-backend/internal/domain"
	"github.com/almacenpro/rma-backend/internal/domain/entity"
	"github.com/almacenpro/rma-backend/internal/domain/repository"
)

// UseCase casos de uso CRUD del catálogo: clientes, marcas y
// transportistas. Sin lógica más allá de la validación de entrada.
type UseCase struct {
	clienteRepo    repository.ClienteRepository
	marcaRepo      repository.MarcaRepository
	transporteRepo repository.TransporteRepository
}

// NewUseCase construye el caso de uso.
func NewUseCase(
	clienteRepo repository.ClienteRepository,
	marcaRepo repository.MarcaRepository,
	transporteRepo repository.TransporteRepository,
) *UseCase {
	return &UseCase{clienteRepo: clienteRepo, marcaRepo: marcaRepo, transporteRepo: transporteRepo}
}

// CrearCliente registra un cliente.
func (uc *UseCase) CrearCliente(in dto.CrearClienteRequest) (*entity.Cliente, error) {
	if in.Nombre == "" {
		return nil, domain.ErrInvalidInput
	}
	c := &entity.Cliente{
		Nombre:    in.Nombre,
		Email:     in.Email,
		Telefono:  in.Telefono,
		Direccion: in.Direccion,
		CreadoEn:  time.Now(),
	}
	if err := uc.clienteRepo.Crear(c); err != nil {
		return nil, err
	}
	return c, nil
}

// ListarClientes devuelve clientes paginados.
func (uc *UseCase) ListarClientes(page dto.PageRequest) ([]*entity.Cliente, error) {
	page.DefaultPage()
	return uc.clienteRepo.Listar(page.Limit, page.Offset)
}

// EliminarCliente borra un cliente.
func (uc *UseCase) EliminarCliente(id int64) error {
	return uc.clienteRepo.Eliminar(id)
}

// CrearMarca registra una marca.
func (uc *UseCase) CrearMarca(in dto.CrearMarcaRequest) (*entity.Marca, error) {
	if in.Nombre == "" {
		return nil, domain.ErrInvalidInput
	}
	m := &entity.Marca{Nombre: in.Nombre}
	if err := uc.marcaRepo.Crear(m); err != nil {
		return nil, err
	}
	return m, nil
}

// ListarMarcas devuelve todas las marcas.
func (uc *UseCase) ListarMarcas() ([]*entity.Marca, error) {
	return uc.marcaRepo.Listar()
}

// EliminarMarca borra una marca.
func (uc *UseCase) EliminarMarca(id int64) error {
	return uc.marcaRepo.Eliminar(id)
}

// CrearTransporte registra un transportista.
func (uc *UseCase) CrearTransporte(in dto.CrearTransporteRequest) (*entity.Transporte, error) {
	if in.Nombre == "" {
		return nil, domain.ErrInvalidInput
	}
	t := &entity.Transporte{Nombre: in.Nombre, Telefono: in.Telefono, CUIT: in.CUIT}
	if err := uc.transporteRepo.Crear(t); err != nil {
		return nil, err
	}
	return t, nil
}

// ListarTransportes devuelve todos los transportistas.
func (uc *UseCase) ListarTransportes() ([]*entity.Transporte, error) {
	return uc.transporteRepo.Listar()
}

// EliminarTransporte borra un transportista.
func (uc *UseCase) EliminarTransporte(id int64) error {
	return uc.transporteRepo.Eliminar(id)
}
