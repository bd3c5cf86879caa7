package statsqa

import (
	"fmt"
	"strings"
)

// careerContext renders season totals as the natural-language summary the
// extractive layer answers from.
func careerContext(seasons []PlayerSeason) string {
	if len(seasons) == 0 {
		return ""
	}
	player := seasons[0].Player

	var totalPts, totalReb, totalAst, totalGP int
	for _, s := range seasons {
		totalPts += s.Points
		totalReb += s.Rebounds
		totalAst += s.Assists
		totalGP += s.GamesPlayed
	}

	var ppg, rpg, apg float64
	if totalGP > 0 {
		ppg = float64(totalPts) / float64(totalGP)
		rpg = float64(totalReb) / float64(totalGP)
		apg = float64(totalAst) / float64(totalGP)
	}

	parts := []string{fmt.Sprintf(
		"%s has played %d seasons, averaging %.1f points, %.1f rebounds, and %.1f assists per game across %d games.",
		player, len(seasons), ppg, rpg, apg, totalGP)}

	latest := seasons[0]
	if latest.GamesPlayed > 0 {
		parts = append(parts, fmt.Sprintf(
			"In the %s season, %s played %d games and averaged %.1f points per game.",
			latest.Season, player, latest.GamesPlayed,
			float64(latest.Points)/float64(latest.GamesPlayed)))
	}
	return strings.Join(parts, " ")
}

func gameLineContext(line GameLine) string {
	stage := "regular-season game"
	if line.Playoff {
		stage = fmt.Sprintf("game %d of the %s playoffs", line.GameNumber, line.Season)
	}
	return fmt.Sprintf("In %s, %s recorded %d points, %d rebounds, and %d assists.",
		stage, line.Player, line.Points, line.Rebounds, line.Assists)
}

func lastGameContext(g TeamGame) string {
	result := "lost"
	if g.Score > g.OppScore {
		result = "won"
	}
	return fmt.Sprintf("On %s, the %s played the %s and %s %d-%d.",
		g.PlayedAt.Format("2006-01-02"), g.Team, g.Opponent, result, g.Score, g.OppScore)
}

func championContext(season, team string) string {
	return fmt.Sprintf("The %s won the %s NBA championship.", team, season)
}
