// Package criteria holds the static evaluation criteria table: for each
// category, the allowed scores and the rationale text recorded with them.
package criteria

import "github.com/quadro-app/quadro/internal/model"

// Criterion is one row of the table: a score and its rationale
type Criterion struct {
	Score       int
	Description string
	Summary     string
}

// Categories lists the evaluation categories in display order
var Categories = []string{
	"Qualidade Técnica",
	"Proatividade",
	"Colaboração em equipe",
	"Comunicação",
	"Organização / Planejamento",
	"Dedicação em estudos",
	"Cumprimento de prazos",
	"Engajamento com Odoo",
}

var table = map[string][]Criterion{
	"Qualidade Técnica": {
		{10, "Nenhum erro, projeto independente", "Acurácia 100%"},
		{9, "Quase sem falhas, ainda não independente", "Acurácia >90%"},
		{8, "Bom projeto, ajustes de organização", "Ajustes leves de organização"},
		{7, "Bom projeto, alguns ajustes técnicos", "Ajustes técnicos solicitados"},
		{6, "Projeto razoável, muitos comentários", "Razoável, precisa de revisão"},
		{5, "Uso errado de materiais ou modelagem", "Erro de materiais/modelagem"},
		{4, "Erro grave em 1 projeto", "Erro grave único"},
		{3, "Dois ou mais erros graves", "Erros graves múltiplos"},
	},
	"Proatividade": {
		{10, "4 ou mais ações além do básico", "Proativo extremo"},
		{9, "3 ações", "Muito proativo"},
		{8, "2 ações", "Proativo"},
		{7, "1 ação", "Alguma proatividade"},
		{6, "Faz o básico e pede novas demandas", "Básico + iniciativa mínima"},
		{5, "Fala que acabou, mas não quer novos projetos", "Pouca disposição"},
		{3, "Nenhuma ação", "Inativo"},
	},
	"Colaboração em equipe": {
		{10, "Sempre ajuda primeiro, acompanha até resolver", "Sempre ajuda primeiro"},
		{9, "Frequentemente ajuda primeiro e acompanha", "Ajuda frequente"},
		{8, "Boa disposição, ajuda, mas não é o primeiro", "Disponível para ajudar"},
		{6, "Oferece ajuda, mas pouco disposto", "Ajuda limitada"},
		{5, "Só escuta, não se envolve", "Escuta passiva"},
		{3, "Nunca ajuda, não se dispõe", "Não colaborativo"},
	},
	"Comunicação": {
		{10, "Clareza total, escuta ativa, escreve bem", "Comunicação perfeita"},
		{9, "Clareza, escuta ativa, e-mails/WhatsApp ok", "Comunicação boa"},
		{7, "Clareza, escuta ativa, mas escrita ruim", "Comunicação com falhas"},
		{6, "Clareza média, escuta/ escrita irregular", "Comunicação média"},
		{5, "Clareza limitada, escuta irregular", "Comunicação fraca"},
		{3, "Não comunica claramente, não escuta", "Comunicação ruim"},
	},
	"Organização / Planejamento": {
		{10, "Muito organizado, ajuda o coordenador", "Organização exemplar"},
		{9, "Organizado, segue procedimentos, sugere melhorias", "Organizado e propositivo"},
		{7, "Respeita procedimentos, sem sugestão", "Organizado básico"},
		{6, "Uma chamada de atenção", "Pouco organizado"},
		{5, "Duas chamadas de atenção", "Desorganizado"},
		{3, "Três ou mais chamadas", "Muito desorganizado"},
	},
	"Dedicação em estudos": {
		{10, "Anota sempre, faz cursos, aplica treinamentos, traz soluções", "Estudo constante e aplicado"},
		{9, "Anota, faz cursos, aproveita treinamentos, às vezes traz soluções", "Estudo aplicado"},
		{7, "Anota às vezes, raramente traz soluções", "Dedicação parcial"},
		{6, "Anota pouco, não faz cursos, não traz soluções", "Pouca dedicação"},
		{5, "Repete perguntas, não usa cursos", "Dedicação mínima"},
		{3, "Repete muitas vezes, não aproveita cursos", "Sem dedicação"},
	},
	"Cumprimento de prazos": {
		{10, "Nenhum atraso", "Pontualidade total"},
		{9, "1 atraso justificado", "Quase pontual"},
		{8, "2 atrasos justificados", "Pontualidade razoável"},
		{7, "3 atrasos justificados", "Atrasos frequentes"},
		{6, "4 atrasos justificados", "Atrasos contínuos"},
		{5, "1 atraso não justificado", "Atraso sem justificativa"},
		{4, "2 atrasos não justificados", "Atrasos problemáticos"},
		{3, "Mais de 2 atrasos não justificados", "Muito atrasado"},
	},
	"Engajamento com Odoo": {
		{10, "Usa todos apps, sugere melhorias, cobra colegas", "Engajamento total"},
		{9, "Usa boa parte dos apps, abre todo dia, cobra colegas", "Engajamento alto"},
		{7, "Usa parte dos apps, abre todo dia, não cobra colegas", "Engajamento moderado"},
		{6, "Usa parte dos apps, abre todo dia, mas não durante todo o dia", "Uso limitado"},
		{5, "Usa apenas parte dos apps, abre de forma irregular", "Uso mínimo"},
		{3, "Não usa corretamente, resiste à ferramenta", "Resistência total"},
	},
}

// Lookup returns the criterion for a category and score
func Lookup(category string, score int) (Criterion, error) {
	rows, ok := table[category]
	if !ok {
		return Criterion{}, model.ErrUnknownCategory
	}
	for _, c := range rows {
		if c.Score == score {
			return c, nil
		}
	}
	return Criterion{}, model.ErrUnknownCriterion
}

// For returns all criteria rows for a category, highest score first
func For(category string) ([]Criterion, error) {
	rows, ok := table[category]
	if !ok {
		return nil, model.ErrUnknownCategory
	}
	out := make([]Criterion, len(rows))
	copy(out, rows)
	return out, nil
}

// Known reports whether category exists in the table
func Known(category string) bool {
	_, ok := table[category]
	return ok
}
