package expr

import (
	"hash/fnv"
	"strconv"
	"strings"
)

// Key renders e into a string that is injective over the closed Expr
// variant set: distinct expressions (by Equal) always produce distinct
// keys, and equal expressions always produce identical keys. Unlike
// String, Key is not meant for display — it exists so the transformation
// graph can key nodes by expression content instead of pointer identity.
func (e *Expr) Key() string {
	var b strings.Builder
	e.writeKey(&b)
	return b.String()
}

func (e *Expr) writeKey(b *strings.Builder) {
	if e == nil {
		b.WriteString("_")
		return
	}
	switch e.Kind {
	case KindConst:
		b.WriteString("#")
		b.WriteString(strconv.FormatInt(int64(e.N), 10))
	case KindVar:
		b.WriteString("$")
		b.WriteString(e.Name)
	default:
		b.WriteByte('(')
		b.WriteString(strconv.Itoa(int(e.Kind)))
		e.L.writeKey(b)
		e.R.writeKey(b)
		b.WriteByte(')')
	}
}

// Hash returns a structural hash of e. Hash agrees with Equal: Equal(a, b)
// implies Hash(a) == Hash(b). Hash is not guaranteed stable across process
// restarts or program versions — only within a single run, which is all
// the transformation graph and its tests require.
func Hash(e *Expr) uint64 {
	h := fnv.New64a()
	_, _ = h.Write([]byte(e.Key()))
	return h.Sum64()
}
