package lexer

// keywordsByLen buckets keyword entries by word length, so lookup is a
// bucket-then-linear-scan rather than a full hash over every keyword.
// Each bucket holds at most a few dozen entries.

type kwEntry struct {
	word string
	tok  TokenKind
}

var keywordsByLen [20][]kwEntry
var keywordText = map[TokenKind]string{}

func init() {
	words := []kwEntry{
		{"select", SELECT},
		{"from", FROM},
		{"where", WHERE},
		{"group", GROUP},
		{"by", BY},
		{"having", HAVING},
		{"create", CREATE},
		{"table", TABLE},
		{"schema", SCHEMA},
		{"view", VIEW},
		{"drop", DROP},
		{"alter", ALTER},
		{"add", ADD},
		{"column", COLUMN},
		{"constraint", CONSTRAINT},
		{"default", DEFAULT},
		{"null", NULL},
		{"not", NOT},
		{"unique", UNIQUE},
		{"primary", PRIMARY},
		{"key", KEY},
		{"foreign", FOREIGN},
		{"references", REFERENCES},
		{"check", CHECK},
		{"cascade", CASCADE},
		{"restrict", RESTRICT},
		{"set", SET},
		{"on", ON},
		{"delete", DELETE},
		{"update", UPDATE},
		{"insert", INSERT},
		{"values", VALUES},
		{"into", INTO},
		{"as", AS},
		{"join", JOIN},
		{"left", LEFT},
		{"right", RIGHT},
		{"inner", INNER},
		{"outer", OUTER},
		{"full", FULL},
		{"cross", CROSS},
		{"natural", NATURAL},
		{"union", UNION},
		{"intersect", INTERSECT},
		{"except", EXCEPT},
		{"distinct", DISTINCT},
		{"all", ALL},
		{"in", IN},
		{"between", BETWEEN},
		{"like", LIKE},
		{"exists", EXISTS},
		{"is", IS},
		{"and", AND},
		{"or", OR},
		{"case", CASE},
		{"when", WHEN},
		{"then", THEN},
		{"else", ELSE},
		{"end", END},
		{"coalesce", COALESCE},
		{"nullif", NULLIF},
		{"count", COUNT},
		{"avg", AVG},
		{"min", MIN},
		{"max", MAX},
		{"sum", SUM},
		{"cast", CAST},
		{"substring", SUBSTRING},
		{"upper", UPPER},
		{"lower", LOWER},
		{"convert", CONVERT},
		{"translate", TRANSLATE},
		{"trim", TRIM},
		{"leading", LEADING},
		{"trailing", TRAILING},
		{"both", BOTH},
		{"for", FOR},
		{"position", POSITION},
		{"extract", EXTRACT},
		{"char_length", CHAR_LENGTH},
		{"character_length", CHARACTER_LENGTH},
		{"bit_length", BIT_LENGTH},
		{"octet_length", OCTET_LENGTH},
		{"year", YEAR},
		{"month", MONTH},
		{"day", DAY},
		{"hour", HOUR},
		{"minute", MINUTE},
		{"second", SECOND},
		{"date", DATE},
		{"time", TIME},
		{"timestamp", TIMESTAMP},
		{"interval", INTERVAL},
		{"current_date", CURRENT_DATE},
		{"current_time", CURRENT_TIME},
		{"current_timestamp", CURRENT_TIMESTAMP},
		{"user", USER},
		{"current_user", CURRENT_USER},
		{"session_user", SESSION_USER},
		{"system_user", SYSTEM_USER},
		{"value", VALUE},
		{"grant", GRANT},
		{"privileges", PRIVILEGES},
		{"public", PUBLIC},
		{"with", WITH},
		{"option", OPTION},
		{"usage", USAGE},
		{"cascaded", CASCADED},
		{"local", LOCAL},
		{"collate", COLLATE},
		{"char", CHAR},
		{"character", CHARACTER},
		{"varying", VARYING},
		{"nchar", NCHAR},
		{"national", NATIONAL},
		{"bit", BIT},
		{"varbit", VARBIT},
		{"int", INT},
		{"integer", INTEGER},
		{"smallint", SMALLINT},
		{"numeric", NUMERIC},
		{"decimal", DECIMAL},
		{"dec", DEC},
		{"float", FLOAT},
		{"real", REAL},
		{"double", DOUBLE},
		{"precision", PRECISION},
		{"zone", ZONE},
		{"at", AT},
		{"temporary", TEMPORARY},
		{"global", GLOBAL},
		{"commit", COMMIT},
		{"rollback", ROLLBACK},
		{"authorization", AUTHORIZATION},
		{"domain", DOMAIN},
		{"collation", COLLATION},
		{"translation", TRANSLATION},
		{"action", ACTION},
		{"match", MATCH},
		{"partial", PARTIAL},
		{"simple", SIMPLE},
		{"work", WORK},
		{"to", TO},
		{"using", USING},
		{"escape", ESCAPE},
		{"no", NO},
	}
	for _, e := range words {
		l := len(e.word)
		if l < len(keywordsByLen) {
			keywordsByLen[l] = append(keywordsByLen[l], e)
		}
		keywordText[e.tok] = e.word
	}
}

// lookupKeyword returns the token kind for a lowercase keyword candidate,
// or IDENTIFIER if val is not a reserved word. Zero allocations.
func lookupKeyword(val []byte) TokenKind {
	l := len(val)
	if l == 0 || l >= len(keywordsByLen) {
		return IDENTIFIER
	}
	bucket := keywordsByLen[l]
	for i := range bucket {
		if bytesEqualString(val, bucket[i].word) {
			return bucket[i].tok
		}
	}
	return IDENTIFIER
}

func bytesEqualString(b []byte, s string) bool {
	if len(b) != len(s) {
		return false
	}
	for i := 0; i < len(b); i++ {
		if b[i] != s[i] {
			return false
		}
	}
	return true
}
