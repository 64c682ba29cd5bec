package core

// nameSorter sorts a slice of Names by the fixed deterministic tie-break
// order (Name.Less, lowest Name wins), via the standard sort.Interface
// wrapper idiom.
type nameSorter []Name

func (s nameSorter) Len() int           { return len(s) }
func (s nameSorter) Less(i, j int) bool { return s[i].Less(s[j]) }
func (s nameSorter) Swap(i, j int)      { s[i], s[j] = s[j], s[i] }
