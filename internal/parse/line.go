package parse

import (
	"strings"

	"github.com/alecthomas/participle/v2"
	"github.com/alecthomas/participle/v2/lexer"
)

var lineLexer = lexer.MustSimple([]lexer.SimpleRule{
	{Name: "Field", Pattern: `[^\s]+`},
	{Name: "Whitespace", Pattern: `\s+`},
})

// fieldLine is a whitespace separated record.
type fieldLine struct {
	Fields []*field `parser:"@@*"`
}

type field struct {
	Pos  lexer.Position
	Text string `parser:"@Field"`
}

var lineParser = participle.MustBuild[fieldLine](
	participle.Lexer(lineLexer),
	participle.Elide("Whitespace"),
)

// splitFields tokenizes a line. The lexer accepts every input, so an error
// here means the line could not be read at all.
func splitFields(line string) ([]*field, error) {
	if strings.TrimSpace(line) == "" {
		return nil, nil
	}
	parsed, err := lineParser.ParseString("", line)
	if err != nil {
		return nil, err
	}
	return parsed.Fields, nil
}
