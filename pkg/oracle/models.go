package oracle

// Model identifies an oracle "model" packaged by this module. Switching
// models is purely by descriptor; callers never construct a model-specific
// Oracle implementation directly.
type Model string

const (
	GPT35 Model = "gpt3_5"
	GPT4  Model = "gpt4"
)

func (m Model) apiModelName() string {
	switch m {
	case GPT35:
		return "gpt-3.5-turbo"
	case GPT4:
		return "gpt-4"
	default:
		return string(m)
	}
}

// TokenTable maps the literal tokens the evaluate task needs to bias/read
// back to their model-specific token ids. Tokenization is model-specific,
// so a table must be supplied per model.
type TokenTable struct {
	White int
	Black int
	Yes   int
	No    int
}

// tokenTables holds the literal-token id tables for the two packaged
// models. These ids are tokenizer artifacts of the underlying provider and
// are supplied alongside the oracle.
var tokenTables = map[Model]TokenTable{
	GPT35: {White: 10531, Black: 11708, Yes: 9891, No: 2360},
	GPT4:  {White: 10531, Black: 11708, Yes: 9891, No: 2360},
}

// TokensFor returns the literal-token id table for the given model.
func TokensFor(m Model) TokenTable {
	return tokenTables[m]
}
