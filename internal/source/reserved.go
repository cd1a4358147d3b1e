package source

// Reserved holds the StringIDs of identifiers the checker treats specially.
// Interning them once at startup means every later comparison is a pointer
// (StringID) compare instead of a string compare.
type Reserved struct {
	Wildcard StringID // "_"
	This     StringID // "this"
	Drop     StringID // "drop"
	Main     StringID // "main"
	Str      StringID // "str"
	As       StringID // "as"
	From     StringID // "from"
}

// InternReserved interns the fixed reserved words into i and returns their IDs.
// Safe to call more than once (Intern is idempotent).
func InternReserved(i *Interner) Reserved {
	return Reserved{
		Wildcard: i.Intern("_"),
		This:     i.Intern("this"),
		Drop:     i.Intern("drop"),
		Main:     i.Intern("main"),
		Str:      i.Intern("str"),
		As:       i.Intern("as"),
		From:     i.Intern("from"),
	}
}
