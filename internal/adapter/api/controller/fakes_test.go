package controller

import (
	"context"

	"github.com/khalessi/gestor/internal/adapter/repository"
	"github.com/khalessi/gestor/internal/domain/cliente"
	"github.com/khalessi/gestor/internal/domain/pedido"
	"github.com/khalessi/gestor/internal/domain/producto"
)

// Repositorios en memoria para los tests de controllers. Reusan los errores
// centinela del paquete repository para que la traducción a HTTP sea la misma
// que en producción.

type fakeClienteRepo struct {
	clientes map[string]*cliente.Cliente
}

func newFakeClienteRepo() *fakeClienteRepo {
	return &fakeClienteRepo{clientes: make(map[string]*cliente.Cliente)}
}

func (r *fakeClienteRepo) Create(_ context.Context, c *cliente.Cliente) error {
	r.clientes[c.ID] = c
	return nil
}

func (r *fakeClienteRepo) FindByID(_ context.Context, id string) (*cliente.Cliente, error) {
	c, ok := r.clientes[id]
	if !ok {
		return nil, repository.ErrClienteNotFound
	}
	return c, nil
}

func (r *fakeClienteRepo) List(_ context.Context) ([]*cliente.Cliente, error) {
	out := make([]*cliente.Cliente, 0, len(r.clientes))
	for _, c := range r.clientes {
		out = append(out, c)
	}
	return out, nil
}

func (r *fakeClienteRepo) Update(_ context.Context, c *cliente.Cliente) error {
	if _, ok := r.clientes[c.ID]; !ok {
		return repository.ErrClienteNotFound
	}
	r.clientes[c.ID] = c
	return nil
}

func (r *fakeClienteRepo) Delete(_ context.Context, id string) error {
	if _, ok := r.clientes[id]; !ok {
		return repository.ErrClienteNotFound
	}
	delete(r.clientes, id)
	return nil
}

type fakeProductoRepo struct {
	productos map[string]*producto.Producto
	enUso     map[string]bool
}

func newFakeProductoRepo() *fakeProductoRepo {
	return &fakeProductoRepo{
		productos: make(map[string]*producto.Producto),
		enUso:     make(map[string]bool),
	}
}

func (r *fakeProductoRepo) Create(_ context.Context, p *producto.Producto) error {
	r.productos[p.ID] = p
	return nil
}

func (r *fakeProductoRepo) FindByID(_ context.Context, id string) (*producto.Producto, error) {
	p, ok := r.productos[id]
	if !ok {
		return nil, repository.ErrProductoNotFound
	}
	return p, nil
}

func (r *fakeProductoRepo) List(_ context.Context) ([]*producto.Producto, error) {
	out := make([]*producto.Producto, 0, len(r.productos))
	for _, p := range r.productos {
		out = append(out, p)
	}
	return out, nil
}

func (r *fakeProductoRepo) Update(_ context.Context, p *producto.Producto) error {
	if _, ok := r.productos[p.ID]; !ok {
		return repository.ErrProductoNotFound
	}
	r.productos[p.ID] = p
	return nil
}

func (r *fakeProductoRepo) Delete(_ context.Context, id string) error {
	if _, ok := r.productos[id]; !ok {
		return repository.ErrProductoNotFound
	}
	if r.enUso[id] {
		return repository.ErrProductoEnUso
	}
	delete(r.productos, id)
	return nil
}

type fakePedidoRepo struct {
	pedidos map[string]*pedido.Pedido
	creates int
}

func newFakePedidoRepo() *fakePedidoRepo {
	return &fakePedidoRepo{pedidos: make(map[string]*pedido.Pedido)}
}

func (r *fakePedidoRepo) Create(_ context.Context, p *pedido.Pedido) error {
	r.creates++
	r.pedidos[p.ID] = p
	return nil
}

func (r *fakePedidoRepo) FindByID(_ context.Context, id string) (*pedido.Pedido, error) {
	p, ok := r.pedidos[id]
	if !ok {
		return nil, repository.ErrPedidoNotFound
	}
	return p, nil
}

func (r *fakePedidoRepo) List(_ context.Context) ([]*pedido.Pedido, error) {
	out := make([]*pedido.Pedido, 0, len(r.pedidos))
	for _, p := range r.pedidos {
		out = append(out, p)
	}
	return out, nil
}

func (r *fakePedidoRepo) Update(_ context.Context, p *pedido.Pedido) error {
	if _, ok := r.pedidos[p.ID]; !ok {
		return repository.ErrPedidoNotFound
	}
	r.pedidos[p.ID] = p
	return nil
}

func (r *fakePedidoRepo) UpdateEstado(_ context.Context, id string, estado pedido.Estado) error {
	p, ok := r.pedidos[id]
	if !ok {
		return repository.ErrPedidoNotFound
	}
	p.Estado = estado
	return nil
}

func (r *fakePedidoRepo) UpdatePago(_ context.Context, id string, pago pedido.Pago) error {
	p, ok := r.pedidos[id]
	if !ok {
		return repository.ErrPedidoNotFound
	}
	p.Pago = pago
	return nil
}

func (r *fakePedidoRepo) Delete(_ context.Context, id string) error {
	if _, ok := r.pedidos[id]; !ok {
		return repository.ErrPedidoNotFound
	}
	delete(r.pedidos, id)
	return nil
}
