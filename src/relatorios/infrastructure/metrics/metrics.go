package metrics

import (
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

// Contadores do motor de relatórios, expostos em /metrics. A divergência
// entre o filtro da listagem e a revalidação local (vendas_rejeitadas) é o
// sinal de drift do backend.
var (
	VendasRejeitadas = promauto.NewCounter(prometheus.CounterOpts{
		Name: "relatorios_vendas_rejeitadas_total",
		Help: "Vendas devolvidas pela listagem mas reprovadas na revalidação local de finalização.",
	})

	DetalhesFalhados = promauto.NewCounter(prometheus.CounterOpts{
		Name: "relatorios_detalhes_falhados_total",
		Help: "Buscas de detalhe de venda que falharam e foram omitidas do relatório.",
	})

	CatalogoFalhas = promauto.NewCounter(prometheus.CounterOpts{
		Name: "relatorios_catalogo_falhas_total",
		Help: "Consultas de metadados (meio de pagamento/produto) que caíram no rótulo sentinela.",
	})
)
