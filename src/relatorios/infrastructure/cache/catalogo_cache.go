package cache

import (
	"context"
	"sync"

	"github.com/rs/zerolog"

	"github.com/albertobarcelos/jiffy-gestor-v2-sub003/src/relatorios/domain/entity"
	"github.com/albertobarcelos/jiffy-gestor-v2-sub003/src/relatorios/domain/port"
	"github.com/albertobarcelos/jiffy-gestor-v2-sub003/src/relatorios/infrastructure/metrics"
	"github.com/albertobarcelos/jiffy-gestor-v2-sub003/src/shared/infrastructure/logger"
)

// MeioPagamentoCache memoriza cadastros de meio de pagamento durante uma
// única execução de relatório: no máximo uma chamada de rede por ID. Uma
// consulta que falha entra no cache como sentinela ("Desconhecido") — a falha
// degrada a etiqueta, nunca aborta a agregação.
//
// O cache vive só durante a execução e é descartado depois; não é
// compartilhado entre relatórios concorrentes.
type MeioPagamentoCache struct {
	fonte port.CatalogoFonte
	meios map[string]entity.MeioPagamento
	mu    sync.RWMutex
	log   zerolog.Logger
}

// NewMeioPagamentoCache cria um cache vazio para uma execução.
func NewMeioPagamentoCache(fonte port.CatalogoFonte) *MeioPagamentoCache {
	return &MeioPagamentoCache{
		fonte: fonte,
		meios: make(map[string]entity.MeioPagamento),
		log:   logger.WithComponent("catalogo-cache"),
	}
}

// Obter devolve o cadastro do meio de pagamento, buscando na rede só na
// primeira vez que o ID aparece.
func (c *MeioPagamentoCache) Obter(ctx context.Context, token, id string) entity.MeioPagamento {
	c.mu.RLock()
	meio, ok := c.meios[id]
	c.mu.RUnlock()
	if ok {
		return meio
	}

	meio, err := c.fonte.MeioPagamentoPorID(ctx, token, id)
	if err != nil {
		c.log.Warn().Err(err).Str("meio_pagamento_id", id).
			Msg("meio de pagamento não resolvido, usando rótulo sentinela")
		metrics.CatalogoFalhas.Inc()
		meio = entity.MeioPagamento{ID: id, Nome: entity.NomeDesconhecido}
	}

	c.mu.Lock()
	c.meios[id] = meio
	c.mu.Unlock()

	return meio
}

// ProdutoCache memoriza nomes de produto por ID, com a mesma política do
// cache de meios de pagamento.
type ProdutoCache struct {
	fonte port.CatalogoFonte
	nomes map[string]string
	mu    sync.RWMutex
	log   zerolog.Logger
}

// NewProdutoCache cria um cache vazio para uma execução.
func NewProdutoCache(fonte port.CatalogoFonte) *ProdutoCache {
	return &ProdutoCache{
		fonte: fonte,
		nomes: make(map[string]string),
		log:   logger.WithComponent("catalogo-cache"),
	}
}

// Nome resolve o nome de exibição de um produto.
func (c *ProdutoCache) Nome(ctx context.Context, token, id string) string {
	c.mu.RLock()
	nome, ok := c.nomes[id]
	c.mu.RUnlock()
	if ok {
		return nome
	}

	produto, err := c.fonte.ProdutoPorID(ctx, token, id)
	if err != nil {
		c.log.Warn().Err(err).Str("produto_id", id).
			Msg("produto não resolvido, usando rótulo sentinela")
		metrics.CatalogoFalhas.Inc()
		produto = entity.Produto{ID: id, Nome: entity.NomeDesconhecido}
	}

	c.mu.Lock()
	c.nomes[id] = produto.Nome
	c.mu.Unlock()

	return produto.Nome
}
