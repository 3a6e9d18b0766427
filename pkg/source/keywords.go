package source

// Keyword is the code of a reserved word. Codes index KeywordNames.
type Keyword int

// PPKeyword is the code of a preprocessor directive keyword.
// Codes index PPKeywordNames.
type PPKeyword int

// Reserved words recognized outside preprocessor mode. The order here
// defines the Keyword codes and must match keywordNames below.
const (
	KeyAlignas Keyword = iota
	KeyAlignof
	KeyAsm
	KeyAuto
	KeyBool
	KeyBreak
	KeyCase
	KeyCatch
	KeyChar
	KeyChar8T
	KeyChar16T
	KeyChar32T
	KeyClass
	KeyConst
	KeyConstexpr
	KeyConstinit
	KeyContinue
	KeyDefault
	KeyDelete
	KeyDo
	KeyDouble
	KeyElse
	KeyEnum
	KeyExplicit
	KeyExport
	KeyExtern
	KeyFalse
	KeyFloat
	KeyFor
	KeyFriend
	KeyGoto
	KeyIf
	KeyInline
	KeyInt
	KeyLong
	KeyMutable
	KeyNamespace
	KeyNew
	KeyNoexcept
	KeyNullptr
	KeyOperator
	KeyPrivate
	KeyProtected
	KeyPublic
	KeyRegister
	KeyReturn
	KeyShort
	KeySigned
	KeySizeof
	KeyStatic
	KeyStruct
	KeySwitch
	KeyTemplate
	KeyThis
	KeyThreadLocal
	KeyThrow
	KeyTrue
	KeyTry
	KeyTypedef
	KeyTypeid
	KeyTypename
	KeyUnion
	KeyUnsigned
	KeyUsing
	KeyVirtual
	KeyVoid
	KeyVolatile
	KeyWcharT
	KeyWhile
)

// Preprocessor keywords recognized inside preprocessor mode. The order
// defines the PPKeyword codes and must match ppKeywordNames below.
const (
	PPDefine PPKeyword = iota
	PPElif
	PPElse
	PPEndif
	PPError
	PPIf
	PPIfdef
	PPIfndef
	PPInclude
	PPLine
	PPPragma
	PPUndef
)

var keywordNames = []string{
	"alignas", "alignof", "asm", "auto", "bool", "break", "case", "catch",
	"char", "char8_t", "char16_t", "char32_t", "class", "const",
	"constexpr", "constinit", "continue", "default", "delete", "do",
	"double", "else", "enum", "explicit", "export", "extern", "false",
	"float", "for", "friend", "goto", "if", "inline", "int", "long",
	"mutable", "namespace", "new", "noexcept", "nullptr", "operator",
	"private", "protected", "public", "register", "return", "short",
	"signed", "sizeof", "static", "struct", "switch", "template", "this",
	"thread_local", "throw", "true", "try", "typedef", "typeid",
	"typename", "union", "unsigned", "using", "virtual", "void",
	"volatile", "wchar_t", "while",
}

var ppKeywordNames = []string{
	"define", "elif", "else", "endif", "error", "if", "ifdef", "ifndef",
	"include", "line", "pragma", "undef",
}

// Lookup tables built once at package init and never mutated afterwards.
var (
	keywords   = make(map[string]Keyword, len(keywordNames))
	ppKeywords = make(map[string]PPKeyword, len(ppKeywordNames))
)

func init() {
	for i, name := range keywordNames {
		keywords[name] = Keyword(i)
	}
	for i, name := range ppKeywordNames {
		ppKeywords[name] = PPKeyword(i)
	}
}

// LookupKeyword returns the code for a reserved word spelling.
func LookupKeyword(spelling string) (Keyword, bool) {
	k, ok := keywords[spelling]
	return k, ok
}

// LookupPPKeyword returns the code for a preprocessor keyword spelling.
func LookupPPKeyword(spelling string) (PPKeyword, bool) {
	k, ok := ppKeywords[spelling]
	return k, ok
}

// String returns the spelling of the keyword, or "" for invalid codes.
func (k Keyword) String() string {
	if k < 0 || int(k) >= len(keywordNames) {
		return ""
	}
	return keywordNames[k]
}

// String returns the spelling of the preprocessor keyword, or "" for
// invalid codes.
func (k PPKeyword) String() string {
	if k < 0 || int(k) >= len(ppKeywordNames) {
		return ""
	}
	return ppKeywordNames[k]
}

// KeywordCount is the number of reserved words, for frequency tables.
func KeywordCount() int { return len(keywordNames) }
