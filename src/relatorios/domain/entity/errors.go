package entity

import "errors"

var (
	// ErrListagemVendas marca a falha fatal da listagem paginada: sem o
	// conjunto completo de IDs não há relatório confiável.
	ErrListagemVendas = errors.New("could not list sales from backend")
)
