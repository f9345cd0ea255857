package usecase

import (
	"context"
	"sort"
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"

	"github.com/albertobarcelos/jiffy-gestor-v2-sub003/src/relatorios/application/response"
	"github.com/albertobarcelos/jiffy-gestor-v2-sub003/src/relatorios/domain/entity"
	"github.com/albertobarcelos/jiffy-gestor-v2-sub003/src/relatorios/domain/port"
	"github.com/albertobarcelos/jiffy-gestor-v2-sub003/src/relatorios/domain/service"
	"github.com/albertobarcelos/jiffy-gestor-v2-sub003/src/relatorios/infrastructure/cache"
	"github.com/albertobarcelos/jiffy-gestor-v2-sub003/src/shared/infrastructure/logger"
)

var cem = decimal.NewFromInt(100)

// RelatorioPagamentosUseCase consolida o faturamento do período por meio de
// pagamento, com o troco abatido proporcionalmente dos pagamentos em
// dinheiro da própria venda.
type RelatorioPagamentosUseCase struct {
	vendas   port.VendasFonte
	catalogo port.CatalogoFonte
}

// NewRelatorioPagamentosUseCase cria uma nova instância do caso de uso.
func NewRelatorioPagamentosUseCase(vendas port.VendasFonte, catalogo port.CatalogoFonte) *RelatorioPagamentosUseCase {
	return &RelatorioPagamentosUseCase{vendas: vendas, catalogo: catalogo}
}

// acumuladorForma agrega uma forma de pagamento durante o fold.
type acumuladorForma struct {
	nome       string
	liquido    decimal.Decimal
	transacoes int
}

// Execute calcula o relatório. O fold é puro sobre o conjunto de vendas
// validadas: rodar duas vezes com as mesmas vendas dá o mesmo resultado. O
// cache de meios de pagamento vive só nesta execução.
func (uc *RelatorioPagamentosUseCase) Execute(ctx context.Context, token string, periodo service.Periodo) (*response.RelatorioPagamentosResponse, error) {
	comeco := time.Now()
	log := logger.WithExecucao("relatorio-pagamentos", uuid.NewString())

	validas, err := coletarVendasFinalizadas(ctx, log, uc.vendas, token, periodo)
	if err != nil {
		return nil, err
	}

	meios := cache.NewMeioPagamentoCache(uc.catalogo)
	formas := make(map[string]*acumuladorForma)
	totalGeral := decimal.Zero

	for _, venda := range validas {
		// ====================================================================
		// PASSO 1: Descartar pagamentos cancelados (qualquer sinal basta)
		// ====================================================================
		pagamentos := make([]entity.Pagamento, 0, len(venda.Pagamentos))
		for _, p := range venda.Pagamentos {
			if p.FoiCancelado() {
				continue
			}
			pagamentos = append(pagamentos, p)
		}

		// ====================================================================
		// PASSO 2: Resolver cada meio de pagamento e separar os em dinheiro
		// ====================================================================
		nomes := make([]string, len(pagamentos))
		emDinheiro := make([]bool, len(pagamentos))
		valoresDinheiro := make([]decimal.Decimal, 0, len(pagamentos))
		for i, p := range pagamentos {
			meio := meios.Obter(ctx, token, p.MeioPagamentoID)
			nomes[i] = meio.Nome
			emDinheiro[i] = meio.EhDinheiro()
			if emDinheiro[i] {
				valoresDinheiro = append(valoresDinheiro, p.Valor)
			}
		}

		// ====================================================================
		// PASSO 3: Ratear o troco da venda entre os pagamentos em dinheiro
		// ====================================================================
		// O troco é artefato do manuseio de caixa, não faturamento. Quando a
		// venda tem mais de um pagamento em dinheiro, cada um absorve a sua
		// fração proporcional. RatearAjuste já trata troco zero e venda sem
		// dinheiro (devolve os valores inalterados).
		liquidosDinheiro := service.RatearAjuste(venda.Troco, valoresDinheiro)

		// ====================================================================
		// PASSO 4: Acumular por forma de pagamento
		// ====================================================================
		// Uma transação por linha de pagamento: venda dividida em dois
		// pagamentos do mesmo meio conta duas transações para esse meio.
		posDinheiro := 0
		for i, p := range pagamentos {
			liquido := p.Valor
			if emDinheiro[i] {
				liquido = liquidosDinheiro[posDinheiro]
				posDinheiro++
			}

			forma, ok := formas[nomes[i]]
			if !ok {
				forma = &acumuladorForma{nome: nomes[i], liquido: decimal.Zero}
				formas[nomes[i]] = forma
			}
			forma.liquido = forma.liquido.Add(liquido)
			forma.transacoes++
			totalGeral = totalGeral.Add(liquido)
		}
	}

	resp := &response.RelatorioPagamentosResponse{
		GeradoEm:       time.Now(),
		PeriodoInicial: periodo.Inicio,
		PeriodoFinal:   periodo.Fim,
		TotalLiquido:   totalGeral,
		Formas:         make([]response.FormaPagamentoResumo, 0, len(formas)),
	}

	for _, forma := range formas {
		percentual := decimal.Zero
		if totalGeral.IsPositive() {
			percentual = forma.liquido.Div(totalGeral).Mul(cem)
		}
		resp.Formas = append(resp.Formas, response.FormaPagamentoResumo{
			MeioPagamento: forma.nome,
			TotalLiquido:  forma.liquido,
			Transacoes:    forma.transacoes,
			Percentual:    percentual,
		})
	}

	// Ordenação decrescente por faturamento; desempate por nome para saída
	// determinística.
	sort.Slice(resp.Formas, func(i, j int) bool {
		cmp := resp.Formas[i].TotalLiquido.Cmp(resp.Formas[j].TotalLiquido)
		if cmp != 0 {
			return cmp > 0
		}
		return resp.Formas[i].MeioPagamento < resp.Formas[j].MeioPagamento
	})

	log.Info().
		Int("formas", len(resp.Formas)).
		Str("total_liquido", totalGeral.String()).
		Dur("duracao", time.Since(comeco)).
		Msg("relatório de pagamentos gerado")

	return resp, nil
}
