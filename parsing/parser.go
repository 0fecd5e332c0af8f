package parsing

import "github.com/reusee/jehanni/tokens"

type parser struct {
	stream *tokens.Stream
}

// Parse consumes the stream and builds a Program. Parsing stops at the first syntax error.
func Parse(stream *tokens.Stream) (*Program, error) {
	p := &parser{
		stream: stream,
	}
	program := new(Program)
	for !p.stream.Done() {
		line, err := p.line()
		if err != nil {
			return nil, err
		}
		program.Lines = append(program.Lines, line)
	}
	return program, nil
}

func (p *parser) fail(expected string) error {
	return SyntaxError{
		Expected: expected,
		Found:    p.stream.Current().String(),
		Pos:      p.stream.Pos(),
	}
}

func (p *parser) line() (*Line, error) {
	def, err := p.varDefinition()
	if err != nil {
		return nil, err
	}
	if _, ok := p.stream.Current().(tokens.Newline); !ok {
		return nil, p.fail(ExpectNewline)
	}
	p.stream.Consume()
	return &Line{
		Inner: def,
	}, nil
}

func (p *parser) varDefinition() (*VarDefinition, error) {
	name, err := p.varName()
	if err != nil {
		return nil, err
	}
	if _, ok := p.stream.Current().(tokens.Definition); !ok {
		return nil, p.fail(ExpectDefinition)
	}
	p.stream.Consume()
	value, err := p.value()
	if err != nil {
		return nil, err
	}
	return &VarDefinition{
		Name:  name,
		Value: value,
	}, nil
}

func (p *parser) varName() (*VarName, error) {
	ident, ok := p.stream.Current().(tokens.Identifier)
	if !ok {
		return nil, p.fail(ExpectVarName)
	}
	p.stream.Consume()
	return &VarName{
		Text: ident.Text,
	}, nil
}

func (p *parser) value() (*Value, error) {
	lit, ok := p.stream.Current().(tokens.IntLiteral)
	if !ok {
		return nil, p.fail(ExpectValue)
	}
	p.stream.Consume()
	return &Value{
		Text: lit.Text,
	}, nil
}
