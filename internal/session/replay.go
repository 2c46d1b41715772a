package session

import "fmt"

// ReplayResult holds the result of replaying a move list.
type ReplayResult struct {
	Valid    bool
	Applied  int    // moves played before the first failure
	ErrorPly int    // 1-based ply that failed, 0 when Valid
	ErrorMsg string
	Reports  []Report
	Err      error
}

// Replay plays the moves in order on the running game, stopping at the
// first move the game refuses. A game is started first if none is running.
func (s *Session) Replay(moves []string) *ReplayResult {
	result := &ReplayResult{Valid: true}
	if s.game == nil {
		if err := s.NewGame(); err != nil {
			result.Valid = false
			result.ErrorMsg = fmt.Sprintf("invalid start position: %v", err)
			result.Err = err
			return result
		}
	}

	for i, text := range moves {
		report, err := s.PlayNotation(text)
		if err != nil {
			result.Valid = false
			result.ErrorPly = s.game.PlyCount() + 1
			result.ErrorMsg = fmt.Sprintf("illegal move at ply %d: %s", result.ErrorPly, text)
			result.Err = err
			result.Reports = append(result.Reports, report)
			s.log.Warn().Int("ply", result.ErrorPly).Str("move", text).Err(err).Msg("replay stopped")
			return result
		}
		result.Applied = i + 1
		result.Reports = append(result.Reports, report)
	}
	return result
}
