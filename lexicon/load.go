package lexicon

import (
	"os"

	"github.com/pkg/errors"
	"gopkg.in/yaml.v3"

	"github.com/ConAcademy/BuffaloBuffalo/syntax"
)

type yamlReading struct {
	POS       string            `yaml:"pos"`
	Canonical string            `yaml:"canonical"`
	Features  map[string]string `yaml:"features"`
}

type yamlFile struct {
	Words map[string][]yamlReading `yaml:"words"`
}

// Parse reads a lexicon from its YAML form:
//
//	words:
//	  buffalo:
//	    - pos: N
//	    - pos: V
//	    - pos: ADJ
//	      canonical: Buffalo
//	      features: {origin: place-name}
func Parse(data []byte) (*Lexicon, error) {
	var file yamlFile
	if err := yaml.Unmarshal(data, &file); err != nil {
		return nil, errors.Wrap(err, "lexicon: unmarshal")
	}
	l := New()
	for word, readings := range file.Words {
		for i, r := range readings {
			if r.POS == "" {
				return nil, errors.Errorf("lexicon: %q reading %d has no pos", word, i+1)
			}
			pos := syntax.Symbol(r.POS)
			if pos.IsNonTerminal() {
				return nil, errors.Errorf("lexicon: %q reading %d: %s is a syntactic category, not a tag", word, i+1, pos)
			}
			l.Add(Entry{
				Word:      word,
				POS:       pos,
				Canonical: r.Canonical,
				Features:  r.Features,
			})
		}
	}
	return l, nil
}

// Load reads a lexicon file from disk.
func Load(filename string) (*Lexicon, error) {
	data, err := os.ReadFile(filename)
	if err != nil {
		return nil, errors.Wrap(err, "lexicon: read")
	}
	return Parse(data)
}
