package client

import (
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"strconv"
	"sync"
	"time"

	"github.com/rs/zerolog"

	"github.com/albertobarcelos/jiffy-gestor-v2-sub003/src/relatorios/domain/entity"
	"github.com/albertobarcelos/jiffy-gestor-v2-sub003/src/relatorios/domain/service"
	"github.com/albertobarcelos/jiffy-gestor-v2-sub003/src/relatorios/infrastructure/metrics"
	"github.com/albertobarcelos/jiffy-gestor-v2-sub003/src/shared/infrastructure/logger"
)

const formatoInstante = "2006-01-02T15:04:05.000Z07:00"

// listaVendasResponse é a página crua da listagem de vendas. Os campos de
// contagem são opcionais: nem todo deployment do backend os devolve, por
// isso a paginação tem três estratégias de término (ver ListarIDsFinalizadas).
type listaVendasResponse struct {
	Items []struct {
		ID string `json:"id"`
	} `json:"items"`
	Count      *int `json:"count,omitempty"`
	TotalPages *int `json:"totalPages,omitempty"`
	Limit      *int `json:"limit,omitempty"`
}

// VendasClient é o cliente HTTP do backend de vendas.
type VendasClient struct {
	httpClient    *http.Client
	baseURL       string
	tamanhoPagina int
	trabalhadores int
	log           zerolog.Logger
}

// NewVendasClient cria o cliente de vendas apontando para o backend do POS.
func NewVendasClient(baseURL string, tamanhoPagina, trabalhadores int) *VendasClient {
	if tamanhoPagina <= 0 {
		tamanhoPagina = 100
	}
	if trabalhadores <= 0 {
		trabalhadores = 16
	}
	return &VendasClient{
		httpClient: &http.Client{
			Timeout: 30 * time.Second,
		},
		baseURL:       baseURL,
		tamanhoPagina: tamanhoPagina,
		trabalhadores: trabalhadores,
		log:           logger.WithComponent("vendas-client"),
	}
}

// ListarIDsFinalizadas percorre a listagem paginada até o fim, acumulando os
// IDs na ordem de chegada das páginas. O total de páginas é derivado da
// primeira resposta, nesta ordem de prioridade:
//  1. campo totalPages explícito
//  2. ceil(count / limit) quando ambos vierem
//  3. página curta (menos itens que o limite) → só existe esta página
//
// Sem nenhum dos três sinais, segue pedindo páginas até vir uma curta.
// Qualquer resposta não-2xx aborta a listagem inteira.
func (c *VendasClient) ListarIDsFinalizadas(ctx context.Context, token string, periodo service.Periodo) ([]string, error) {
	ids := make([]string, 0, c.tamanhoPagina)

	totalPaginas := -1 // desconhecido até ler a primeira página
	for pagina := 0; totalPaginas < 0 || pagina < totalPaginas; pagina++ {
		resp, err := c.listarPagina(ctx, token, periodo, pagina)
		if err != nil {
			return nil, err
		}

		for _, item := range resp.Items {
			ids = append(ids, item.ID)
		}

		if pagina == 0 {
			totalPaginas = resolverTotalPaginas(resp, c.tamanhoPagina)
		}

		// Fallback: sem total conhecido, uma página curta encerra a varredura.
		if totalPaginas < 0 && len(resp.Items) < c.tamanhoPagina {
			break
		}
	}

	return ids, nil
}

func (c *VendasClient) listarPagina(ctx context.Context, token string, periodo service.Periodo, pagina int) (*listaVendasResponse, error) {
	params := url.Values{}
	params.Set("limit", strconv.Itoa(c.tamanhoPagina))
	params.Set("offset", strconv.Itoa(pagina*c.tamanhoPagina))
	params.Add("status", entity.StatusFinalizada)
	if !periodo.Vazio() {
		params.Set("periodoInicial", periodo.Inicio.Format(formatoInstante))
		params.Set("periodoFinal", periodo.Fim.Format(formatoInstante))
	}

	endpoint := fmt.Sprintf("%s/api/v1/vendas?%s", c.baseURL, params.Encode())

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, endpoint, nil)
	if err != nil {
		return nil, fmt.Errorf("error creating request: %w", err)
	}
	req.Header.Set("Authorization", token)

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return nil, fmt.Errorf("error calling vendas listing: %w", err)
	}
	defer resp.Body.Close()

	body, err := io.ReadAll(resp.Body)
	if err != nil {
		return nil, fmt.Errorf("error reading response: %w", err)
	}

	if resp.StatusCode != http.StatusOK {
		return nil, fmt.Errorf("%w: page %d returned status %d: %s",
			entity.ErrListagemVendas, pagina, resp.StatusCode, string(body))
	}

	var lista listaVendasResponse
	if err := json.Unmarshal(body, &lista); err != nil {
		return nil, fmt.Errorf("error unmarshalling vendas page: %w", err)
	}

	return &lista, nil
}

// resolverTotalPaginas aplica as três estratégias de término sobre a primeira
// página. Devolve -1 quando o total é indeterminável (página cheia e nenhum
// campo de contagem).
func resolverTotalPaginas(primeira *listaVendasResponse, tamanhoPagina int) int {
	if primeira.TotalPages != nil {
		return *primeira.TotalPages
	}

	if primeira.Count != nil {
		limite := tamanhoPagina
		if primeira.Limit != nil && *primeira.Limit > 0 {
			limite = *primeira.Limit
		}
		return (*primeira.Count + limite - 1) / limite
	}

	if len(primeira.Items) < tamanhoPagina {
		return 1
	}

	return -1
}

// BuscarDetalhes resolve os registros completos das vendas com um pool de
// trabalhadores concorrentes. Uma falha individual vira warning e a venda sai
// do conjunto; o lote nunca aborta por causa de uma venda ilegível. A ordem
// do resultado não é garantida (os agregadores são folds independentes de
// ordem).
func (c *VendasClient) BuscarDetalhes(ctx context.Context, token string, ids []string) []entity.Venda {
	vendas := make([]entity.Venda, 0, len(ids))
	if len(ids) == 0 {
		return vendas
	}

	trabalhadores := c.trabalhadores
	if trabalhadores > len(ids) {
		trabalhadores = len(ids)
	}

	fila := make(chan string)
	var mu sync.Mutex
	var wg sync.WaitGroup

	for i := 0; i < trabalhadores; i++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			for id := range fila {
				venda, err := c.buscarVenda(ctx, token, id)
				if err != nil {
					c.log.Warn().Err(err).Str("venda_id", id).
						Msg("detalhe de venda ignorado no relatório")
					metrics.DetalhesFalhados.Inc()
					continue
				}
				mu.Lock()
				vendas = append(vendas, *venda)
				mu.Unlock()
			}
		}()
	}

	for _, id := range ids {
		fila <- id
	}
	close(fila)
	wg.Wait()

	return vendas
}

func (c *VendasClient) buscarVenda(ctx context.Context, token, id string) (*entity.Venda, error) {
	endpoint := fmt.Sprintf("%s/api/v1/vendas/%s", c.baseURL, id)

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, endpoint, nil)
	if err != nil {
		return nil, fmt.Errorf("error creating request: %w", err)
	}
	req.Header.Set("Authorization", token)

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return nil, fmt.Errorf("error calling venda detail: %w", err)
	}
	defer resp.Body.Close()

	body, err := io.ReadAll(resp.Body)
	if err != nil {
		return nil, fmt.Errorf("error reading response: %w", err)
	}

	if resp.StatusCode != http.StatusOK {
		return nil, fmt.Errorf("venda %s returned status %d: %s", id, resp.StatusCode, string(body))
	}

	var venda entity.Venda
	if err := json.Unmarshal(body, &venda); err != nil {
		return nil, fmt.Errorf("error unmarshalling venda %s: %w", id, err)
	}

	return &venda, nil
}
