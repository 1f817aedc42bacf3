package encode

type EncodeOption func(*EncState)

func EncodeColors(c *Colors) EncodeOption {
	return func(es *EncState) { es.Color = c.Color }
}

// EncodeCanonical writes every content line in canonical form, modified or
// not.
func EncodeCanonical(v bool) EncodeOption {
	return func(es *EncState) { es.canonical = v }
}
