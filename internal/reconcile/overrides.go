package reconcile

// OverrideKey identifies a known data-drift case: the resolved district plus
// the normalized source neighborhood text.
type OverrideKey struct {
	DistrictID   int
	Neighborhood string
}

// overrides maps source neighborhoods the scorer cannot bridge to their
// reference ids. The reference snapshot lags the listing; every entry is an
// audited exception with the cause recorded next to it. Overrides are exact
// corrections, never fuzzy decisions.
var overrides = map[OverrideKey]int{
	// Renamed to Yıldırım Kent Mh. after the reference snapshot; the listing
	// still carries the old name.
	{DistrictID: 1289, Neighborhood: "TURKMENLER MH."}: 268233,

	// Split from Cumhuriyet Mh. in 2022; the reference set carries only the
	// parent entry.
	{DistrictID: 1289, Neighborhood: "YESILOVA MH."}: 268240,

	// Listing abbreviates Gazi Mustafa Kemal beyond what the scorer bridges.
	{DistrictID: 1763, Neighborhood: "G.M.K. MH."}: 271031,

	// Merged into Barbaros Mh.; the listing predates the merge.
	{DistrictID: 1763, Neighborhood: "PIRI REIS MH."}: 271012,

	// Reference spells out "Onbeş Temmuz"; the listing uses digits, which
	// transliteration cannot reconcile.
	{DistrictID: 2034, Neighborhood: "15 TEMMUZ MH."}: 284117,
}

// Overrides returns a copy of the override table, keyed for exact lookup.
func Overrides() map[OverrideKey]int {
	out := make(map[OverrideKey]int, len(overrides))
	for k, v := range overrides {
		out[k] = v
	}
	return out
}
