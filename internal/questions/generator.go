package questions

import (
	"fmt"
	"strings"
)

// DefaultTemplates are the question shapes used by Generator. {keyword} is replaced by the topic.
var DefaultTemplates = []string{
	"Can you explain the concept of {keyword} and how it is used in a professional setting?",
	"What are the key advantages of using {keyword} compared to its alternatives?",
	"Describe a challenging situation where you had to apply your knowledge of {keyword}.",
	"How would you optimize a system that relies heavily on {keyword}?",
	"What common pitfalls should developers avoid when working with {keyword}?",
}

const DefaultCount = 5

// Question is one generated interview question. Keywords carries the expected keyword set
// used by the coverage strategy; the generator only fills it with the topic keyword.
type Question struct {
	ID       string   `json:"id" mapstructure:"id"`
	Text     string   `json:"question" mapstructure:"question"`
	Keyword  string   `json:"keyword" mapstructure:"keyword"`
	Keywords []string `json:"keywords,omitempty" mapstructure:"keywords"`
}

// Generator builds questions from a job description. The output is deterministic:
// keywords are taken in rank order and templates rotate.
type Generator struct {
	templates []string
}

func NewGenerator(templates []string) *Generator {
	if len(templates) == 0 {
		templates = DefaultTemplates
	}
	return &Generator{templates: templates}
}

// Generate returns n questions. When the description yields fewer keywords than n, keywords
// are reused in order. An empty description, or one without usable keywords, gives none.
func (g *Generator) Generate(jobDescription string, n int) []Question {
	if strings.TrimSpace(jobDescription) == "" || n <= 0 {
		return []Question{}
	}

	keywords := ExtractKeywords(jobDescription)
	if len(keywords) == 0 {
		return []Question{}
	}

	out := make([]Question, 0, n)
	for i := 0; i < n; i++ {
		keyword := keywords[i%len(keywords)]
		template := g.templates[i%len(g.templates)]
		out = append(out, Question{
			ID:       fmt.Sprintf("q%d", i+1),
			Text:     strings.ReplaceAll(template, "{keyword}", keyword),
			Keyword:  keyword,
			Keywords: []string{keyword},
		})
	}

	return out
}
