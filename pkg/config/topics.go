package config

// DefaultTopics returns the built-in registry of Polish financial news
// sources. Feed URL lists give each topic a coarse bias, the keyword sets
// refine classification on top of that. Topics without keywords pass all
// items through unchanged.
func DefaultTopics() map[string]Topic {
	return map[string]Topic{
		"biznes": {
			URLs: []string{
				"https://www.bankier.pl/rss/wiadomosci.xml",
				"https://www.money.pl/rss/",
				"https://forsal.pl/rss.xml",
			},
		},
		"rynki": {
			URLs: []string{
				"https://www.bankier.pl/rss/wiadomosci.xml",
				"https://www.stockwatch.pl/rss/wiadomosci.xml",
				"https://strefainwestorow.pl/rss.xml",
			},
		},
		"gielda": {
			URLs: []string{
				"https://www.bankier.pl/rss/gielda.xml",
				"https://www.stockwatch.pl/rss/wiadomosci.xml",
				"https://www.parkiet.com/rss/1019",
			},
			Include: []string{"gpw", "wig", "akcje", "giełd", "gield", "spółk", "spolk", "notowania", "indeks", "sesja"},
		},
		"crypto": {
			URLs: []string{
				"https://comparic.pl/feed/",
				"https://bithub.pl/feed/",
			},
			Include: []string{"bitcoin", "btc", "ethereum", "eth", "krypto", "blockchain", "token", "defi", "halving", "stablecoin"},
		},
		"waluty": {
			URLs: []string{
				"https://www.bankier.pl/rss/waluty.xml",
				"https://comparic.pl/feed/",
			},
			Include: []string{"kurs", "złot", "zlot", "euro", "dolar", "frank", "funt", "eur/", "usd/", "chf", "forex", "nbp"},
			Exclude: []string{"bitcoin", "krypto"},
		},
		"analizy": {
			URLs: []string{
				"https://www.fxmag.pl/rss",
				"https://strefainwestorow.pl/rss.xml",
			},
			Include: []string{"analiza", "prognoz", "rekomendacj", "wycen", "raport", "komentarz"},
		},
		"gospodarka": {
			URLs: []string{
				"https://forsal.pl/rss.xml",
				"https://www.bankier.pl/rss/gospodarka.xml",
			},
			Include: []string{"pkb", "inflacj", "stopy procentowe", "nbp", "rpp", "bezroboci", "budżet", "budzet", "gospodark"},
		},
		"surowce": {
			URLs: []string{
				"https://www.bankier.pl/rss/surowce.xml",
				"https://comparic.pl/feed/",
			},
			Include: []string{"ropa", "złoto", "zloto", "gaz", "miedź", "miedz", "srebro", "surowc", "węgiel", "wegiel", "brent", "wti"},
		},
		"all": {
			URLs: []string{
				"https://www.bankier.pl/rss/wiadomosci.xml",
				"https://www.money.pl/rss/",
				"https://forsal.pl/rss.xml",
				"https://www.stockwatch.pl/rss/wiadomosci.xml",
				"https://comparic.pl/feed/",
				"https://strefainwestorow.pl/rss.xml",
			},
		},
	}
}
