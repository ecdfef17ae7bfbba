package wallpaper

// Resolve applies the prefix rules to one monitor entry. When a prefix is
// configured and the entry opted in, the wallpaper path is joined under it;
// otherwise the declared path passes through untouched. No cleaning and no
// existence check happen here.
func Resolve(m Monitor, prefix string) string {
	if prefix != "" && m.UsePrefix {
		return prefix + "/" + m.Wallpaper
	}
	return m.Wallpaper
}
