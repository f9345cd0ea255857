package controller

import (
	"context"
	"encoding/json"
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/albertobarcelos/jiffy-gestor-v2-sub003/src/relatorios/application/usecase"
	"github.com/albertobarcelos/jiffy-gestor-v2-sub003/src/relatorios/domain/entity"
	"github.com/albertobarcelos/jiffy-gestor-v2-sub003/src/relatorios/domain/service"
)

type vendasStub struct {
	vendas []entity.Venda
	erro   error
}

func (s *vendasStub) ListarIDsFinalizadas(_ context.Context, _ string, _ service.Periodo) ([]string, error) {
	if s.erro != nil {
		return nil, s.erro
	}
	ids := make([]string, 0, len(s.vendas))
	for _, v := range s.vendas {
		ids = append(ids, v.ID)
	}
	return ids, nil
}

func (s *vendasStub) BuscarDetalhes(_ context.Context, _ string, _ []string) []entity.Venda {
	return s.vendas
}

type catalogoStub struct{}

func (catalogoStub) MeioPagamentoPorID(_ context.Context, _ string, id string) (entity.MeioPagamento, error) {
	return entity.MeioPagamento{ID: id, Nome: "Dinheiro"}, nil
}

func (catalogoStub) ProdutoPorID(_ context.Context, _ string, id string) (entity.Produto, error) {
	return entity.Produto{ID: id, Nome: "Café"}, nil
}

func routerDeTeste(vendas *vendasStub) *gin.Engine {
	gin.SetMode(gin.TestMode)
	router := gin.New()

	pagamentosUC := usecase.NewRelatorioPagamentosUseCase(vendas, catalogoStub{})
	produtosUC := usecase.NewRelatorioProdutosUseCase(vendas, catalogoStub{})
	ctrl := NewRelatorioController(pagamentosUC, produtosUC)
	ctrl.RegisterRoutes(router.Group("/api/v1"))

	return router
}

func vendaDeTeste() entity.Venda {
	status := entity.StatusFinalizada
	agora := time.Now()
	return entity.Venda{
		ID:              "v1",
		Status:          &status,
		DataFinalizacao: &agora,
		Troco:           decimal.Zero,
		Pagamentos: []entity.Pagamento{
			{ID: "p1", Valor: decimal.RequireFromString("50.00"), MeioPagamentoID: "m1"},
		},
		ProdutosLancados: []entity.ItemProduto{
			{ProdutoID: "prod1", Quantidade: 3, ValorFinal: decimal.RequireFromString("15.00")},
		},
	}
}

func TestRelatorioPagamentosEndpoint(t *testing.T) {
	router := routerDeTeste(&vendasStub{vendas: []entity.Venda{vendaDeTeste()}})

	w := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodGet, "/api/v1/relatorios/pagamentos?periodo=hoje", nil)
	router.ServeHTTP(w, req)

	require.Equal(t, http.StatusOK, w.Code)

	var corpo struct {
		TotalLiquido decimal.Decimal `json:"totalLiquido"`
		Formas       []struct {
			MeioPagamento string `json:"meioPagamento"`
		} `json:"formas"`
	}
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &corpo))
	require.Len(t, corpo.Formas, 1)
	assert.Equal(t, "Dinheiro", corpo.Formas[0].MeioPagamento)
	assert.True(t, corpo.TotalLiquido.Equal(decimal.RequireFromString("50.00")))
}

func TestRelatorioProdutosEndpoint(t *testing.T) {
	router := routerDeTeste(&vendasStub{vendas: []entity.Venda{vendaDeTeste()}})

	w := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodGet, "/api/v1/relatorios/produtos?periodo=hoje&limite=5", nil)
	router.ServeHTTP(w, req)

	require.Equal(t, http.StatusOK, w.Code)
	assert.Contains(t, w.Body.String(), "Café")
}

func TestRelatorioComDatasExplicitas(t *testing.T) {
	router := routerDeTeste(&vendasStub{vendas: []entity.Venda{vendaDeTeste()}})

	w := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodGet, "/api/v1/relatorios/pagamentos?inicio=2026-03-01&fim=2026-03-31", nil)
	router.ServeHTTP(w, req)

	assert.Equal(t, http.StatusOK, w.Code)
}

func TestRelatorioDataMalformadaRetorna400(t *testing.T) {
	router := routerDeTeste(&vendasStub{})

	w := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodGet, "/api/v1/relatorios/pagamentos?inicio=31-03-2026&fim=2026-03-31", nil)
	router.ServeHTTP(w, req)

	assert.Equal(t, http.StatusBadRequest, w.Code)
}

func TestRelatorioLimiteInvalidoRetorna400(t *testing.T) {
	router := routerDeTeste(&vendasStub{})

	w := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodGet, "/api/v1/relatorios/produtos?limite=zero", nil)
	router.ServeHTTP(w, req)

	assert.Equal(t, http.StatusBadRequest, w.Code)
}

func TestRelatorioFalhaDeListagemRetorna502(t *testing.T) {
	router := routerDeTeste(&vendasStub{erro: errors.New("backend fora do ar")})

	w := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodGet, "/api/v1/relatorios/pagamentos", nil)
	router.ServeHTTP(w, req)

	assert.Equal(t, http.StatusBadGateway, w.Code)
}
