package lexicon

import (
	"errors"
	"fmt"
	"io"
	"os"
	"strconv"
	"strings"

	"github.com/rs/zerolog"

	"turkmorph.org/core/logger"
	"turkmorph.org/core/phonetics"
	"turkmorph.org/core/types"
	"turkmorph.org/core/utils"
)

var ErrMalformedLine = errors.New("malformed lexicon line")

// Loader parses text lexicons of the form
//
//	kitap
//	okumak
//	ben [P:Pron, Pers; A:Special]
//	hak [A:Doubling, Voicing]
//	zeytinyağı [A:CompoundP3sg; R:zeytinyağ]
//
// Lines starting with ## are comments.
type Loader struct {
	tmcLogger zerolog.Logger
}

func NewLoader() *Loader {
	return &Loader{tmcLogger: logger.NewLogger("LexiconLoader")}
}

func NewLoaderWithLogger(l zerolog.Logger) *Loader {
	return &Loader{tmcLogger: l}
}

func LoadLexiconFromLines(lines ...string) (*RootLexicon, error) {
	return NewLoader().LoadLines(lines...)
}

func LoadLexiconFromFiles(paths ...string) (*RootLexicon, error) {
	return NewLoader().LoadFiles(paths...)
}

func (loader *Loader) LoadLines(lines ...string) (*RootLexicon, error) {
	return loader.Load(strings.NewReader(strings.Join(lines, "\n")), "lines")
}

func (loader *Loader) LoadFiles(paths ...string) (*RootLexicon, error) {
	lex := NewRootLexicon()
	for _, p := range paths {
		f, err := os.Open(p)
		if err != nil {
			return nil, fmt.Errorf("could not open lexicon %s: %w", p, err)
		}
		part, err := loader.Load(f, p)
		f.Close()
		if err != nil {
			return nil, err
		}
		lex.AddAll(part)
	}
	loader.resolveReferences(lex)
	lex.Lock()
	return lex, nil
}

// Load reads every entry of r. The first malformed line aborts loading.
func (loader *Loader) Load(r io.Reader, source string) (*RootLexicon, error) {
	lex := NewRootLexicon()
	lineNo := 0
	var loadErr error
	for line := range utils.NewLineReader(r, source, "##") {
		lineNo++
		if loadErr != nil {
			continue
		}
		item, err := loader.ParseLine(line)
		if err != nil {
			loadErr = fmt.Errorf("%s entry %d: %w", source, lineNo, err)
			continue
		}
		if err := lex.Add(item); err != nil {
			loader.tmcLogger.Warn().Str("source", source).Err(err).Msg("Skipping lexicon entry")
		}
	}
	if loadErr != nil {
		return nil, loadErr
	}
	loader.resolveReferences(lex)
	loader.tmcLogger.Debug().Str("source", source).Int("items", lex.Len()).Msg("Lexicon loaded")
	return lex, nil
}

// ParseLine turns one lexicon line into a dictionary item with inferred attributes.
func (loader *Loader) ParseLine(line string) (*DictionaryItem, error) {
	line = strings.TrimSpace(line)
	lemma := line
	meta := ""
	if i := strings.IndexByte(line, '['); i >= 0 {
		if !strings.HasSuffix(line, "]") {
			return nil, fmt.Errorf("%w: missing ] in %q", ErrMalformedLine, line)
		}
		lemma = strings.TrimSpace(line[:i])
		meta = line[i+1 : len(line)-1]
	}
	if lemma == "" || strings.ContainsAny(lemma, "[] ") {
		return nil, fmt.Errorf("%w: bad lemma in %q", ErrMalformedLine, line)
	}

	fields, err := parseMeta(meta)
	if err != nil {
		return nil, fmt.Errorf("%w: %v in %q", ErrMalformedLine, err, line)
	}

	primaryPos, secondaryPos, err := loader.parsePos(lemma, fields["P"])
	if err != nil {
		return nil, fmt.Errorf("%w: %v in %q", ErrMalformedLine, err, line)
	}

	index := 0
	if v, ok := fields["Index"]; ok {
		index, err = strconv.Atoi(v)
		if err != nil || index < 0 {
			return nil, fmt.Errorf("%w: bad index %q in %q", ErrMalformedLine, v, line)
		}
	}

	attrs := loader.parseAttributes(lemma, fields["A"])
	root := rootOf(lemma, primaryPos)
	item := NewDictionaryItem(lemma, root, primaryPos, secondaryPos, attrs, index)
	item.Pronunciation = phonetics.Lower(fields["Pr"])
	item.ReferenceID = fields["Ref"]
	item.CompoundRoot = fields["R"]
	if item.HasAttribute(types.CompoundP3sg) && item.CompoundRoot == "" {
		item.CompoundRoot = compoundRootOf(item.Root)
	}
	inferAttributes(item)
	return item, nil
}

func parseMeta(meta string) (map[string]string, error) {
	fields := make(map[string]string)
	if strings.TrimSpace(meta) == "" {
		return fields, nil
	}
	for _, part := range strings.Split(meta, ";") {
		part = strings.TrimSpace(part)
		if part == "" {
			continue
		}
		kv := strings.SplitN(part, ":", 2)
		if len(kv) != 2 {
			return nil, fmt.Errorf("field %q has no key", part)
		}
		key := strings.TrimSpace(kv[0])
		switch key {
		case "P", "A", "Pr", "Ref", "Index", "R":
		default:
			return nil, fmt.Errorf("unknown field %q", key)
		}
		fields[key] = strings.TrimSpace(kv[1])
	}
	return fields, nil
}

func (loader *Loader) parsePos(lemma, value string) (types.PrimaryPos, types.SecondaryPos, error) {
	if value == "" {
		return guessPos(lemma)
	}
	parts := strings.Split(value, ",")
	primaryPos, err := types.ParsePrimaryPos(strings.TrimSpace(parts[0]))
	if err != nil {
		return primaryPos, types.NoSecondaryPos, err
	}
	secondaryPos := types.NoSecondaryPos
	if len(parts) > 1 {
		secondaryPos, err = types.ParseSecondaryPos(strings.TrimSpace(parts[1]))
		if err != nil {
			return primaryPos, secondaryPos, err
		}
	}
	return primaryPos, secondaryPos, nil
}

func guessPos(lemma string) (types.PrimaryPos, types.SecondaryPos, error) {
	first, _ := phonetics.FirstLetter(lemma)
	if phonetics.Lower(string(first)) != string(first) {
		return types.Noun, types.ProperNoun, nil
	}
	if isInfinitive(lemma) {
		return types.Verb, types.NoSecondaryPos, nil
	}
	return types.Noun, types.NoSecondaryPos, nil
}

func (loader *Loader) parseAttributes(lemma, value string) types.RootAttributes {
	var attrs types.RootAttributes
	if value == "" {
		return attrs
	}
	for _, name := range strings.Split(value, ",") {
		name = strings.TrimSpace(name)
		a, err := types.RootAttributeNames.Parse(name)
		if err != nil {
			loader.tmcLogger.Warn().Str("lemma", lemma).Err(err).Msg("Ignoring root attribute")
			continue
		}
		attrs = attrs.With(a)
	}
	return attrs
}

func (loader *Loader) resolveReferences(lex *RootLexicon) {
	for _, item := range lex.Items() {
		if item.ReferenceID == "" || item.ReferenceItem != nil {
			continue
		}
		ref := lex.GetByID(item.ReferenceID)
		if ref == nil {
			loader.tmcLogger.Debug().Str("item", item.ID).Str("ref", item.ReferenceID).Msg("Unresolved reference")
			continue
		}
		item.ReferenceItem = ref
	}
}

func isInfinitive(lemma string) bool {
	return len([]rune(lemma)) > 3 && (strings.HasSuffix(lemma, "mak") || strings.HasSuffix(lemma, "mek"))
}

func rootOf(lemma string, primaryPos types.PrimaryPos) string {
	root := phonetics.Lower(lemma)
	if primaryPos == types.Verb && isInfinitive(root) {
		root = root[:len(root)-len("mak")]
	}
	return root
}

// compoundRootOf strips the possessive ending of a compound noun: zeytinyağı -> zeytinyağ, bilgisayarı -> bilgisayar.
func compoundRootOf(root string) string {
	last, ok := phonetics.LastLetter(root)
	if !ok || !phonetics.IsVowel(last) {
		return root
	}
	trimmed := phonetics.TrimLastLetter(root)
	if prev, ok := phonetics.LastLetter(trimmed); ok && prev == 's' && phonetics.VowelCount(trimmed) > 1 {
		beforeS := phonetics.TrimLastLetter(trimmed)
		if l, ok := phonetics.LastLetter(beforeS); ok && phonetics.IsVowel(l) {
			return beforeS
		}
	}
	return trimmed
}
