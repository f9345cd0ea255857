package cache

import (
	"context"
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/albertobarcelos/jiffy-gestor-v2-sub003/src/relatorios/domain/entity"
)

type catalogoContador struct {
	chamadas map[string]int
	falhar   bool
}

func (f *catalogoContador) MeioPagamentoPorID(_ context.Context, _ string, id string) (entity.MeioPagamento, error) {
	f.chamadas[id]++
	if f.falhar {
		return entity.MeioPagamento{}, errors.New("backend indisponível")
	}
	return entity.MeioPagamento{ID: id, Nome: "Dinheiro"}, nil
}

func (f *catalogoContador) ProdutoPorID(_ context.Context, _ string, id string) (entity.Produto, error) {
	f.chamadas[id]++
	if f.falhar {
		return entity.Produto{}, errors.New("backend indisponível")
	}
	return entity.Produto{ID: id, Nome: "Café"}, nil
}

func TestMeioPagamentoCacheUmaBuscaPorID(t *testing.T) {
	fonte := &catalogoContador{chamadas: make(map[string]int)}
	c := NewMeioPagamentoCache(fonte)

	for i := 0; i < 5; i++ {
		meio := c.Obter(context.Background(), "Bearer tok", "m1")
		assert.Equal(t, "Dinheiro", meio.Nome)
	}

	assert.Equal(t, 1, fonte.chamadas["m1"])
}

// A falha também entra no cache: uma única tentativa de rede por ID por
// execução, mesmo quando o backend está fora.
func TestMeioPagamentoCacheFalhaViraSentinelaECacheia(t *testing.T) {
	fonte := &catalogoContador{chamadas: make(map[string]int), falhar: true}
	c := NewMeioPagamentoCache(fonte)

	primeiro := c.Obter(context.Background(), "Bearer tok", "m1")
	segundo := c.Obter(context.Background(), "Bearer tok", "m1")

	assert.Equal(t, entity.NomeDesconhecido, primeiro.Nome)
	assert.Equal(t, entity.NomeDesconhecido, segundo.Nome)
	assert.Equal(t, 1, fonte.chamadas["m1"])
}

func TestProdutoCacheUmaBuscaPorID(t *testing.T) {
	fonte := &catalogoContador{chamadas: make(map[string]int)}
	c := NewProdutoCache(fonte)

	assert.Equal(t, "Café", c.Nome(context.Background(), "Bearer tok", "p1"))
	assert.Equal(t, "Café", c.Nome(context.Background(), "Bearer tok", "p1"))
	assert.Equal(t, 1, fonte.chamadas["p1"])
}

func TestProdutoCacheFalhaViraSentinela(t *testing.T) {
	fonte := &catalogoContador{chamadas: make(map[string]int), falhar: true}
	c := NewProdutoCache(fonte)

	assert.Equal(t, entity.NomeDesconhecido, c.Nome(context.Background(), "Bearer tok", "p1"))
	assert.Equal(t, 1, fonte.chamadas["p1"])
}
