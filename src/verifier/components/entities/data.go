package entities

// teamAliases maps short names and nicknames to canonical franchise names.
var teamAliases = map[string]string{
	"lakers":        "Los Angeles Lakers",
	"celtics":       "Boston Celtics",
	"warriors":      "Golden State Warriors",
	"heat":          "Miami Heat",
	"spurs":         "San Antonio Spurs",
	"knicks":        "New York Knicks",
	"bulls":         "Chicago Bulls",
	"mavs":          "Dallas Mavericks",
	"mavericks":     "Dallas Mavericks",
	"nets":          "Brooklyn Nets",
	"clippers":      "Los Angeles Clippers",
	"suns":          "Phoenix Suns",
	"nuggets":       "Denver Nuggets",
	"bucks":         "Milwaukee Bucks",
	"sixers":        "Philadelphia 76ers",
	"76ers":         "Philadelphia 76ers",
	"raptors":       "Toronto Raptors",
	"wizards":       "Washington Wizards",
	"hawks":         "Atlanta Hawks",
	"hornets":       "Charlotte Hornets",
	"cavs":          "Cleveland Cavaliers",
	"cavaliers":     "Cleveland Cavaliers",
	"pistons":       "Detroit Pistons",
	"pacers":        "Indiana Pacers",
	"grizzlies":     "Memphis Grizzlies",
	"timberwolves":  "Minnesota Timberwolves",
	"wolves":        "Minnesota Timberwolves",
	"pelicans":      "New Orleans Pelicans",
	"thunder":       "Oklahoma City Thunder",
	"magic":         "Orlando Magic",
	"blazers":       "Portland Trail Blazers",
	"trail blazers": "Portland Trail Blazers",
	"kings":         "Sacramento Kings",
	"jazz":          "Utah Jazz",
	"rockets":       "Houston Rockets",
}

// teamAbbrevs maps official abbreviations to canonical franchise names.
var teamAbbrevs = map[string]string{
	"atl": "Atlanta Hawks", "bos": "Boston Celtics", "bkn": "Brooklyn Nets",
	"cha": "Charlotte Hornets", "chi": "Chicago Bulls", "cle": "Cleveland Cavaliers",
	"dal": "Dallas Mavericks", "den": "Denver Nuggets", "det": "Detroit Pistons",
	"gsw": "Golden State Warriors", "hou": "Houston Rockets", "ind": "Indiana Pacers",
	"lac": "Los Angeles Clippers", "lal": "Los Angeles Lakers", "mem": "Memphis Grizzlies",
	"mia": "Miami Heat", "mil": "Milwaukee Bucks", "min": "Minnesota Timberwolves",
	"nop": "New Orleans Pelicans", "nyk": "New York Knicks", "okc": "Oklahoma City Thunder",
	"orl": "Orlando Magic", "phi": "Philadelphia 76ers", "phx": "Phoenix Suns",
	"por": "Portland Trail Blazers", "sac": "Sacramento Kings", "sas": "San Antonio Spurs",
	"tor": "Toronto Raptors", "uta": "Utah Jazz", "was": "Washington Wizards",
}

// statKeywords maps normalized stat names to the phrasings that mention them.
var statKeywords = map[string][]string{
	"points":                {"points", "scored", "scoring", "pts", "ppg"},
	"rebounds":              {"rebounds", "rebound", "rebs", "boards", "rpg"},
	"assists":               {"assists", "assist", "ast", "apg"},
	"steals":                {"steals", "steal", "stl"},
	"blocks":                {"blocks", "block", "blk"},
	"turnovers":             {"turnovers", "turnover", "tov"},
	"three_pointers":        {"three pointers", "3 pointers", "3-pointers", "threes made", "3pt made"},
	"field_goal_percentage": {"field goal percentage", "fg%", "shooting percentage"},
	"free_throw_percentage": {"free throw percentage", "ft%"},
	"minutes":               {"minutes", "playing time"},
	"average":               {"average", "avg", "per game"},
}

// temporalKeywords maps temporal buckets to their phrasings.
var temporalKeywords = map[string][]string{
	"last":        {"last", "most recent", "previous", "latest"},
	"this_season": {"this season", "current season"},
	"career":      {"career", "all-time", "all time", "lifetime"},
	"season":      {"season", "year"},
}

// championshipKeywords signal a title claim.
var championshipKeywords = []string{
	"championship", "won the title", "the title", "nba finals", "the finals", "champions",
}

// seedPlayers is the built-in player roster; callers extend it from the
// dataset at startup.
var seedPlayers = []string{
	"LeBron James",
	"Stephen Curry",
	"Kevin Durant",
	"Giannis Antetokounmpo",
	"Nikola Jokic",
	"Luka Doncic",
	"Jayson Tatum",
	"Joel Embiid",
	"Kawhi Leonard",
	"Jimmy Butler",
	"Damian Lillard",
	"Anthony Davis",
	"Devin Booker",
	"Shai Gilgeous-Alexander",
	"Ja Morant",
	"Trae Young",
	"Donovan Mitchell",
	"Anthony Edwards",
	"Victor Wembanyama",
	"Kyrie Irving",
	"James Harden",
	"Russell Westbrook",
	"Chris Paul",
	"Klay Thompson",
	"Draymond Green",
	"Paul George",
	"Zion Williamson",
	"De'Aaron Fox",
	"Jaylen Brown",
	"Bam Adebayo",
	"Jamal Murray",
	"Tyrese Haliburton",
	"Kobe Bryant",
	"Michael Jordan",
	"Kareem Abdul-Jabbar",
	"Magic Johnson",
	"Larry Bird",
	"Shaquille O'Neal",
	"Tim Duncan",
	"Dirk Nowitzki",
}
