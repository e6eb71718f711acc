package repository

import (
	"fmt"
	"testing"
	"unicode"

	"github.com/jackaholy/Cheminv2.0/internal/database"
	"github.com/jackaholy/Cheminv2.0/internal/search"
	"github.com/jackaholy/Cheminv2.0/internal/search/dto"
	"github.com/stretchr/testify/assert"
)

func TestFoldFor(t *testing.T) {
	assert.Equal(t, database.FoldNameFunc+"(c.name)", foldFor("sqlite")("c.name"))
	assert.Equal(t,
		"LOWER(REGEXP_REPLACE(c.name, '"+pgWhitespace+"', '', 'g'))",
		foldFor("pgx")("c.name"))
}

// Every rune the Go side strips must appear in the Postgres class, either
// literally, as a \uXXXX escape or inside the U+2000 range.
func TestPGWhitespaceCoversIsSpace(t *testing.T) {
	escapes := map[rune]string{'\t': `\t`, '\n': `\n`, '\v': `\v`, '\f': `\f`, '\r': `\r`, ' ': " "}
	for r := rune(0); r <= 0x3000; r++ {
		if !unicode.IsSpace(r) {
			continue
		}
		if r >= 0x2000 && r <= 0x200a {
			continue
		}
		want, ok := escapes[r]
		if !ok {
			want = fmt.Sprintf(`\u%04x`, r)
		}
		assert.Contains(t, pgWhitespace, want, "%U", r)
	}
}

func TestWhereClause_FoldsBothNameColumns(t *testing.T) {
	p := search.BuildPredicate("Äthyl", []string{"Äthyl"}, dto.Filter{})
	where, args := whereClause(p, foldFor("sqlite"))

	assert.Contains(t, where, database.FoldNameFunc+"(c.name) LIKE ?")
	assert.Contains(t, where, database.FoldNameFunc+"(c.alphabetical_name) LIKE ?")
	assert.Equal(t, []interface{}{"%äthyl%", "%äthyl%", "Äthyl"}, args)
}
