package name

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestToken(t *testing.T) {
	for key, tc := range map[string]struct {
		segment, want string
	}{
		"empty":          {"", ""},
		"short":          {"abc", "ABC"},
		"truncated":      {"Program Files", "PROGRA"},
		"replaced":       {"a,b+c;d", "A_B_C_"},
		"brackets":       {"[x]=y", "_X__Y"},
		"stripped":       {"my.long name", "MYLONG"},
		"punctuation":    {"a!#$%&'()-@^_`{}~", "A!#$%&"},
		"non ascii":      {"élan vital", "LANVIT"},
		"only stripped":  {"...", ""},
		"digits":         {"2024 report", "2024RE"},
		"spaces":         {"My Documents", "MYDOCU"},
		"only spaces":    {"   ", ""},
		"backtick brace": {"`{x}`", "`{X}`"},
	} {
		t.Run(key, func(t *testing.T) {
			assert.Equal(t, tc.want, Token(tc.segment))
		})
	}
}

func TestTokenProperties(t *testing.T) {
	for _, segment := range []string{
		"VeryLongDirectoryNameHere",
		"some file (copy).txt",
		"日本語のファイル名",
		"a=b=c=d=e=f=g",
		"~~~~~~~~~~",
	} {
		tok := Token(segment)
		assert.LessOrEqual(t, len(tok), maxTokenLength)
		for _, r := range tok {
			assert.True(t, isAllowed(r), "unexpected %q in %q", r, tok)
		}
		assert.Equal(t, tok, Token(tok))
	}
}

func TestExtToken(t *testing.T) {
	for key, tc := range map[string]struct {
		segment, want string
	}{
		"none":          {"README", ""},
		"simple":        {"file.txt", ".TXT"},
		"truncated":     {"archive.tar.gzip", ".GZI"},
		"lone dot":      {"file.", ""},
		"single char":   {"main.c", ".C"},
		"dotfile":       {".bashrc", ""},
		"dotted prefix": {"..config", ".CON"},
		"double dot":    {"..", ""},
		"triple dot":    {"...", ""},
		"stripped":      {"file.é", ""},
		"replaced":      {"file.a+b", ".A_B"},
	} {
		t.Run(key, func(t *testing.T) {
			assert.Equal(t, tc.want, ExtToken(tc.segment))
		})
	}
}

func TestShort(t *testing.T) {
	assert.Equal(t, "PROGRA~1", Short("Program Files", 1))
	assert.Equal(t, "ALPHAB~2.TXT", Short("alphabeta.txt", 2))
	assert.Equal(t, "ANOTHE~12", Short("AnotherLongSegment", 12))
	assert.Equal(t, "MYDOCU~1", Short("My Documents", 1))
	assert.Equal(t, "CONFIG~1.CON", Short("..config", 1))
}

func TestKey(t *testing.T) {
	assert.Equal(t, Key("alphabet.txt"), Key("alphabeta.txt"))
	assert.NotEqual(t, Key("alphabet.txt"), Key("alphabet.doc"))
}
