package controller

import (
	"log"
	"net/http"
	"strconv"
	"time"

	"github.com/gin-gonic/gin"

	"github.com/albertobarcelos/jiffy-gestor-v2-sub003/src/relatorios/application/usecase"
	"github.com/albertobarcelos/jiffy-gestor-v2-sub003/src/relatorios/domain/service"
	"github.com/albertobarcelos/jiffy-gestor-v2-sub003/src/shared/infrastructure/middleware"
)

// RelatorioController atende as requisições HTTP dos relatórios do dashboard.
type RelatorioController struct {
	pagamentosUC *usecase.RelatorioPagamentosUseCase
	produtosUC   *usecase.RelatorioProdutosUseCase
}

// NewRelatorioController cria uma nova instância do controlador.
func NewRelatorioController(pagamentosUC *usecase.RelatorioPagamentosUseCase, produtosUC *usecase.RelatorioProdutosUseCase) *RelatorioController {
	return &RelatorioController{
		pagamentosUC: pagamentosUC,
		produtosUC:   produtosUC,
	}
}

// RegisterRoutes registra as rotas do controlador.
func (c *RelatorioController) RegisterRoutes(router *gin.RouterGroup) {
	relatorios := router.Group("/relatorios")
	{
		relatorios.GET("/pagamentos", c.RelatorioPagamentos)
		relatorios.GET("/produtos", c.RelatorioProdutos)
	}

	log.Println("Rotas Relatorios disponíveis:")
	log.Println("  GET    /api/v1/relatorios/pagamentos?periodo=<token>|inicio=&fim=")
	log.Println("  GET    /api/v1/relatorios/produtos?periodo=<token>&limite=N")
}

// RelatorioPagamentos gera o consolidado por meio de pagamento.
func (c *RelatorioController) RelatorioPagamentos(ctx *gin.Context) {
	// ========================================================================
	// PASSO 1: Resolver o período (token nomeado ou limites explícitos)
	// ========================================================================
	periodo, ok := resolverPeriodoDaQuery(ctx)
	if !ok {
		return
	}

	// ========================================================================
	// PASSO 2: Executar o caso de uso com o token do middleware
	// ========================================================================
	resp, err := c.pagamentosUC.Execute(ctx.Request.Context(), middleware.Token(ctx), periodo)
	if err != nil {
		log.Printf("Error generating payments report: %v", err)
		ctx.JSON(http.StatusBadGateway, gin.H{
			"error":   "Error generating payments report",
			"details": err.Error(),
		})
		return
	}

	// ========================================================================
	// PASSO 3: Responder
	// ========================================================================
	ctx.JSON(http.StatusOK, resp)
}

// RelatorioProdutos gera o ranking de produtos mais vendidos.
func (c *RelatorioController) RelatorioProdutos(ctx *gin.Context) {
	// ========================================================================
	// PASSO 1: Resolver o período
	// ========================================================================
	periodo, ok := resolverPeriodoDaQuery(ctx)
	if !ok {
		return
	}

	// ========================================================================
	// PASSO 2: Ler o limite do ranking (opcional)
	// ========================================================================
	limite := usecase.LimiteProdutosPadrao
	if bruto := ctx.Query("limite"); bruto != "" {
		parsed, err := strconv.Atoi(bruto)
		if err != nil || parsed <= 0 {
			ctx.JSON(http.StatusBadRequest, gin.H{
				"error": "limite must be a positive integer",
			})
			return
		}
		limite = parsed
	}

	// ========================================================================
	// PASSO 3: Executar o caso de uso
	// ========================================================================
	resp, err := c.produtosUC.Execute(ctx.Request.Context(), middleware.Token(ctx), periodo, limite)
	if err != nil {
		log.Printf("Error generating products report: %v", err)
		ctx.JSON(http.StatusBadGateway, gin.H{
			"error":   "Error generating products report",
			"details": err.Error(),
		})
		return
	}

	ctx.JSON(http.StatusOK, resp)
}

// resolverPeriodoDaQuery aceita ?periodo=<token> ou ?inicio=YYYY-MM-DD&fim=
// YYYY-MM-DD. Limites explícitos têm precedência sobre o token; sem nenhum
// dos dois o relatório sai sem filtro de data (mesmo efeito de "todos").
// Em caso de data malformada responde 400 e devolve ok=false.
func resolverPeriodoDaQuery(ctx *gin.Context) (service.Periodo, bool) {
	inicio := ctx.Query("inicio")
	fim := ctx.Query("fim")

	if inicio != "" || fim != "" {
		de, err1 := time.ParseInLocation("2006-01-02", inicio, time.Local)
		ate, err2 := time.ParseInLocation("2006-01-02", fim, time.Local)
		if err1 != nil || err2 != nil {
			ctx.JSON(http.StatusBadRequest, gin.H{
				"error": "inicio and fim must both be valid dates (format: YYYY-MM-DD)",
			})
			return service.Periodo{}, false
		}
		return service.PeriodoExplicito(de, ate), true
	}

	return service.ResolverPeriodo(ctx.Query("periodo"), time.Now()), true
}
