package legalservertest

import (
	"fmt"

	"github.com/RichardKnop/legalserver"
)

type QuestionOption func(*legalserver.Question)

func WithQuestionContent(content string) QuestionOption {
	return func(q *legalserver.Question) {
		q.Content = content
	}
}

func (g *DataGen) Question(options ...QuestionOption) legalserver.Question {
	aQuestion := legalserver.Question{
		Content: fmt.Sprintf("¿Qué dice el artículo %d?", g.Number(1, 3000)),
	}

	for _, o := range options {
		o(&aQuestion)
	}

	return aQuestion
}
