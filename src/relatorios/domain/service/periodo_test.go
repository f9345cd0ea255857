package service

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

var agoraFixo = time.Date(2026, 3, 15, 14, 30, 45, 0, time.Local)

func TestResolverPeriodoHoje(t *testing.T) {
	p := ResolverPeriodo(PeriodoHoje, agoraFixo)

	require.NotNil(t, p.Inicio)
	require.NotNil(t, p.Fim)
	assert.Equal(t, time.Date(2026, 3, 15, 0, 0, 0, 0, time.Local), *p.Inicio)
	assert.Equal(t, time.Date(2026, 3, 15, 23, 59, 59, 999_000_000, time.Local), *p.Fim)
}

func TestResolverPeriodoUltimos7Dias(t *testing.T) {
	p := ResolverPeriodo(Periodo7Dias, agoraFixo)

	require.NotNil(t, p.Inicio)
	assert.Equal(t, time.Date(2026, 3, 8, 0, 0, 0, 0, time.Local), *p.Inicio)
	assert.Equal(t, time.Date(2026, 3, 15, 23, 59, 59, 999_000_000, time.Local), *p.Fim)
}

func TestResolverPeriodoMesAtual(t *testing.T) {
	p := ResolverPeriodo(PeriodoMesAtual, agoraFixo)

	require.NotNil(t, p.Inicio)
	assert.Equal(t, time.Date(2026, 3, 1, 0, 0, 0, 0, time.Local), *p.Inicio)
	assert.Equal(t, time.Date(2026, 3, 15, 23, 59, 59, 999_000_000, time.Local), *p.Fim)
}

func TestResolverPeriodoTodosEDesconhecidoSaoVazios(t *testing.T) {
	assert.True(t, ResolverPeriodo(PeriodoTodos, agoraFixo).Vazio())
	assert.True(t, ResolverPeriodo("qualquer-coisa", agoraFixo).Vazio())
	assert.True(t, ResolverPeriodo("", agoraFixo).Vazio())
}

func TestPeriodoExplicitoNormalizaLimitesDoDia(t *testing.T) {
	de := time.Date(2026, 1, 10, 11, 22, 33, 0, time.Local)
	ate := time.Date(2026, 1, 20, 8, 15, 0, 0, time.Local)

	p := PeriodoExplicito(de, ate)

	assert.Equal(t, time.Date(2026, 1, 10, 0, 0, 0, 0, time.Local), *p.Inicio)
	assert.Equal(t, time.Date(2026, 1, 20, 23, 59, 59, 999_000_000, time.Local), *p.Fim)
	assert.False(t, p.Vazio())
}
