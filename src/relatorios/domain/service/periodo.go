package service

import "time"

// Tokens de período aceitos pelo dashboard.
const (
	PeriodoHoje     = "hoje"
	Periodo7Dias    = "ultimos-7-dias"
	Periodo30Dias   = "ultimos-30-dias"
	Periodo60Dias   = "ultimos-60-dias"
	Periodo90Dias   = "ultimos-90-dias"
	PeriodoMesAtual = "mes-atual"
	PeriodoTodos    = "todos"
)

// Periodo é um par de instantes inclusivos. Início e fim nulos significam
// "sem filtro de data".
type Periodo struct {
	Inicio *time.Time
	Fim    *time.Time
}

// Vazio indica que nenhum filtro de data deve ser aplicado.
func (p Periodo) Vazio() bool {
	return p.Inicio == nil && p.Fim == nil
}

// ResolverPeriodo converte um token nomeado no par [início, fim] em horário
// local: meia-noite do primeiro dia até 23:59:59.999 do último. Função pura:
// tokens desconhecidos e "todos" devolvem o período vazio, nunca erro.
func ResolverPeriodo(token string, agora time.Time) Periodo {
	switch token {
	case PeriodoHoje:
		return PeriodoExplicito(agora, agora)
	case Periodo7Dias:
		return PeriodoExplicito(agora.AddDate(0, 0, -7), agora)
	case Periodo30Dias:
		return PeriodoExplicito(agora.AddDate(0, 0, -30), agora)
	case Periodo60Dias:
		return PeriodoExplicito(agora.AddDate(0, 0, -60), agora)
	case Periodo90Dias:
		return PeriodoExplicito(agora.AddDate(0, 0, -90), agora)
	case PeriodoMesAtual:
		primeiroDia := time.Date(agora.Year(), agora.Month(), 1, 0, 0, 0, 0, agora.Location())
		return PeriodoExplicito(primeiroDia, agora)
	default:
		// "todos" e tokens desconhecidos: sem filtro
		return Periodo{}
	}
}

// PeriodoExplicito monta o período inclusivo entre dois dias quaisquer,
// normalizando para os limites do dia.
func PeriodoExplicito(de, ate time.Time) Periodo {
	inicio := time.Date(de.Year(), de.Month(), de.Day(), 0, 0, 0, 0, de.Location())
	fim := time.Date(ate.Year(), ate.Month(), ate.Day(), 23, 59, 59, 999_000_000, ate.Location())
	return Periodo{Inicio: &inicio, Fim: &fim}
}
