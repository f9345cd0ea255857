package client

import (
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"time"

	"github.com/albertobarcelos/jiffy-gestor-v2-sub003/src/relatorios/domain/entity"
)

// CatalogoClient consulta os cadastros (meios de pagamento e produtos) do
// backend do POS, um registro por vez. O cache por execução garante no
// máximo uma chamada por ID.
type CatalogoClient struct {
	httpClient *http.Client
	baseURL    string
}

// NewCatalogoClient cria o cliente de cadastros.
func NewCatalogoClient(baseURL string) *CatalogoClient {
	return &CatalogoClient{
		httpClient: &http.Client{
			Timeout: 10 * time.Second,
		},
		baseURL: baseURL,
	}
}

// MeioPagamentoPorID busca o cadastro de um meio de pagamento.
func (c *CatalogoClient) MeioPagamentoPorID(ctx context.Context, token, id string) (entity.MeioPagamento, error) {
	var meio entity.MeioPagamento
	endpoint := fmt.Sprintf("%s/api/v1/meios-pagamento/%s", c.baseURL, id)
	if err := c.buscar(ctx, token, endpoint, &meio); err != nil {
		return entity.MeioPagamento{}, fmt.Errorf("error fetching meio de pagamento %s: %w", id, err)
	}
	return meio, nil
}

// ProdutoPorID busca o cadastro de um produto.
func (c *CatalogoClient) ProdutoPorID(ctx context.Context, token, id string) (entity.Produto, error) {
	var produto entity.Produto
	endpoint := fmt.Sprintf("%s/api/v1/produtos/%s", c.baseURL, id)
	if err := c.buscar(ctx, token, endpoint, &produto); err != nil {
		return entity.Produto{}, fmt.Errorf("error fetching produto %s: %w", id, err)
	}
	return produto, nil
}

func (c *CatalogoClient) buscar(ctx context.Context, token, endpoint string, destino any) error {
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, endpoint, nil)
	if err != nil {
		return fmt.Errorf("error creating request: %w", err)
	}
	req.Header.Set("Authorization", token)

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return fmt.Errorf("error calling catalogo: %w", err)
	}
	defer resp.Body.Close()

	body, err := io.ReadAll(resp.Body)
	if err != nil {
		return fmt.Errorf("error reading response: %w", err)
	}

	if resp.StatusCode != http.StatusOK {
		return fmt.Errorf("catalogo returned status %d: %s", resp.StatusCode, string(body))
	}

	if err := json.Unmarshal(body, destino); err != nil {
		return fmt.Errorf("error unmarshalling catalogo response: %w", err)
	}

	return nil
}
