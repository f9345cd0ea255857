package controller

import (
	"fmt"
	"io"
	"log"
	"net/http"
	"time"

	"github.com/gin-gonic/gin"

	"github.com/albertobarcelos/jiffy-gestor-v2-sub003/src/shared/infrastructure/middleware"
)

// ProxyController repassa leituras autenticadas do dashboard para o backend
// do POS (cadastros de produtos, clientes, impressoras etc.). O token já
// passou pelo middleware; aqui só se encaminha o pedido e se devolve a
// resposta como veio.
type ProxyController struct {
	httpClient *http.Client
	backendURL string
}

// NewProxyController cria o controlador de proxy.
func NewProxyController(backendURL string) *ProxyController {
	return &ProxyController{
		httpClient: &http.Client{
			Timeout: 30 * time.Second,
		},
		backendURL: backendURL,
	}
}

// RegisterRoutes registra as rotas do controlador.
func (c *ProxyController) RegisterRoutes(router *gin.RouterGroup) {
	router.GET("/proxy/*caminho", c.Encaminhar)

	log.Println("Rotas Proxy disponíveis:")
	log.Println("  GET    /api/v1/proxy/*caminho")
}

// Encaminhar repassa a requisição GET para o backend preservando o caminho,
// a query string e o token.
func (c *ProxyController) Encaminhar(ctx *gin.Context) {
	caminho := ctx.Param("caminho")
	endpoint := fmt.Sprintf("%s%s", c.backendURL, caminho)
	if ctx.Request.URL.RawQuery != "" {
		endpoint = fmt.Sprintf("%s?%s", endpoint, ctx.Request.URL.RawQuery)
	}

	req, err := http.NewRequestWithContext(ctx.Request.Context(), http.MethodGet, endpoint, nil)
	if err != nil {
		ctx.JSON(http.StatusInternalServerError, gin.H{
			"error": "Error creating proxied request",
		})
		return
	}
	req.Header.Set("Authorization", middleware.Token(ctx))

	resp, err := c.httpClient.Do(req)
	if err != nil {
		log.Printf("Error proxying %s: %v", caminho, err)
		ctx.JSON(http.StatusBadGateway, gin.H{
			"error": "Backend unavailable",
		})
		return
	}
	defer resp.Body.Close()

	body, err := io.ReadAll(resp.Body)
	if err != nil {
		ctx.JSON(http.StatusBadGateway, gin.H{
			"error": "Error reading backend response",
		})
		return
	}

	contentType := resp.Header.Get("Content-Type")
	if contentType == "" {
		contentType = "application/json"
	}
	ctx.Data(resp.StatusCode, contentType, body)
}
