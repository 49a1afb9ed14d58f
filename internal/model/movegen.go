package model

var (
	rookDirs   = []Square{{Row: 1}, {Row: -1}, {Col: 1}, {Col: -1}}
	bishopDirs = []Square{{Row: 1, Col: 1}, {Row: 1, Col: -1}, {Row: -1, Col: 1}, {Row: -1, Col: -1}}
	queenDirs  = append(append([]Square{}, rookDirs...), bishopDirs...)
	knightDirs = []Square{
		{Row: 2, Col: 1}, {Row: 2, Col: -1}, {Row: -2, Col: 1}, {Row: -2, Col: -1},
		{Row: 1, Col: 2}, {Row: 1, Col: -2}, {Row: -1, Col: 2}, {Row: -1, Col: -2},
	}
	kingDirs = queenDirs
)

// knightAugmented reports whether the piece gains the knight's jumps on top
// of its own geometry. Knights already have them, kings and pawns never do.
func (p PieceType) knightAugmented() bool {
	return p == Bishop || p == Rook || p == Queen
}

type genMode uint8

const (
	// moveGen produces pseudo-legal destinations, castling included.
	moveGen genMode = iota
	// attackGen produces the squares a piece controls: pawns hit their
	// forward diagonals and never push, kings never castle.
	attackGen
)

// pseudoMoves returns the destinations the piece on from can reach by its
// geometry and occupancy alone, without checking the mover's king.
func (p *Position) pseudoMoves(from Square, mode genMode) []Square {
	piece := p.pieceAt(from)
	if piece == nil {
		return nil
	}

	var moves []Square
	switch piece.Type {
	case Pawn:
		if mode == attackGen {
			moves = p.pawnAttacks(from, piece.Color)
		} else {
			moves = p.pawnMoves(from, piece.Color)
		}
	case Knight:
		moves = p.stepMoves(from, piece.Color, knightDirs)
	case Bishop:
		moves = p.slideMoves(from, piece.Color, bishopDirs)
	case Rook:
		moves = p.slideMoves(from, piece.Color, rookDirs)
	case Queen:
		moves = p.slideMoves(from, piece.Color, queenDirs)
	case King:
		moves = p.stepMoves(from, piece.Color, kingDirs)
		if mode == moveGen {
			moves = append(moves, p.castleMoves(from, piece.Color)...)
		}
	case NoPieceType:
		return nil
	}

	if piece.Type.knightAugmented() {
		moves = mergeMoves(moves, p.stepMoves(from, piece.Color, knightDirs))
	}
	return moves
}

// mergeMoves appends the squares of extra that are not already in moves.
func mergeMoves(moves, extra []Square) []Square {
	for _, sq := range extra {
		if !containsSquare(moves, sq) {
			moves = append(moves, sq)
		}
	}
	return moves
}

func containsSquare(squares []Square, sq Square) bool {
	for _, s := range squares {
		if s == sq {
			return true
		}
	}
	return false
}

func (p *Position) stepMoves(from Square, color Color, dirs []Square) []Square {
	var moves []Square
	for _, dir := range dirs {
		target := from.offset(dir.Row, dir.Col)
		if !target.Valid() {
			continue
		}
		if t := p.board.at(target); t == nil || t.Color != color {
			moves = append(moves, target)
		}
	}
	return moves
}

func (p *Position) slideMoves(from Square, color Color, dirs []Square) []Square {
	var moves []Square
	for _, dir := range dirs {
		target := from.offset(dir.Row, dir.Col)
		for target.Valid() {
			t := p.board.at(target)
			if t == nil {
				moves = append(moves, target)
			} else {
				if t.Color != color {
					moves = append(moves, target)
				}
				break
			}
			target = target.offset(dir.Row, dir.Col)
		}
	}
	return moves
}

func (p *Position) pawnMoves(from Square, color Color) []Square {
	var moves []Square
	dir := color.forward()

	// forward 1, then forward 2 from the home rank
	one := from.offset(dir, 0)
	if one.Valid() && p.board.at(one) == nil {
		moves = append(moves, one)
		two := from.offset(2*dir, 0)
		if from.Row == color.pawnRow() && p.board.at(two) == nil {
			moves = append(moves, two)
		}
	}

	for _, dCol := range []int{-1, 1} {
		target := from.offset(dir, dCol)
		if !target.Valid() {
			continue
		}
		if t := p.board.at(target); t != nil && t.Color != color {
			moves = append(moves, target)
		}
	}

	if target, ok := p.enPassantTarget(from, color); ok {
		moves = append(moves, target)
	}
	return moves
}

func (p *Position) pawnAttacks(from Square, color Color) []Square {
	var attacks []Square
	for _, dCol := range []int{-1, 1} {
		target := from.offset(color.forward(), dCol)
		if !target.Valid() {
			continue
		}
		if t := p.board.at(target); t == nil || t.Color != color {
			attacks = append(attacks, target)
		}
	}
	return attacks
}

// enPassantTarget returns the square a pawn on from would land on when
// capturing the pawn in the en passant window.
func (p *Position) enPassantTarget(from Square, color Color) (Square, bool) {
	ep := p.enPassant
	if ep == nil || ep.Row != from.Row || abs(ep.Col-from.Col) != 1 {
		return Square{}, false
	}
	victim := p.board.at(*ep)
	if victim == nil || victim.Type != Pawn || victim.Color == color {
		return Square{}, false
	}
	target := Square{Row: from.Row + color.forward(), Col: ep.Col}
	if !target.Valid() || p.board.at(target) != nil {
		return Square{}, false
	}
	return target, true
}

// enPassantVictim reports whether from->to is an en passant capture and, if
// so, where the captured pawn stands.
func (p *Position) enPassantVictim(from, to Square) (Square, bool) {
	piece := p.pieceAt(from)
	if piece == nil || piece.Type != Pawn || from.Col == to.Col || p.board.at(to) != nil {
		return Square{}, false
	}
	target, ok := p.enPassantTarget(from, piece.Color)
	if !ok || target != to {
		return Square{}, false
	}
	return *p.enPassant, true
}

type castleSide struct {
	kingSide bool
	rookCol  int
	kingTo   int
	rookTo   int
	// between must be empty; path is what the king crosses and lands on.
	between []int
	path    []int
}

var castleSides = [...]castleSide{
	{kingSide: true, rookCol: 7, kingTo: 6, rookTo: 5, between: []int{5, 6}, path: []int{5, 6}},
	{kingSide: false, rookCol: 0, kingTo: 2, rookTo: 3, between: []int{1, 2, 3}, path: []int{3, 2}},
}

const kingHomeCol = 4

func castleSideFor(kingTo int) (castleSide, bool) {
	for _, side := range castleSides {
		if side.kingTo == kingTo {
			return side, true
		}
	}
	return castleSide{}, false
}

func isCastlingMove(piece *Piece, from, to Square) bool {
	return piece.Type == King && from.Col == kingHomeCol && abs(to.Col-from.Col) == 2
}

func (p *Position) castleMoves(from Square, color Color) []Square {
	home := Square{Row: color.homeRow(), Col: kingHomeCol}
	if from != home {
		return nil
	}
	rights := p.castling.of(color)
	if !rights.KingSide && !rights.QueenSide {
		return nil
	}
	opponent := color.Opponent()
	if p.IsSquareAttacked(home, opponent) {
		return nil
	}

	var moves []Square
	for _, side := range castleSides {
		allowed := rights.QueenSide
		if side.kingSide {
			allowed = rights.KingSide
		}
		if allowed && p.canCastle(color, side) {
			moves = append(moves, Square{Row: home.Row, Col: side.kingTo})
		}
	}
	return moves
}

func (p *Position) canCastle(color Color, side castleSide) bool {
	row := color.homeRow()
	rook := p.board[row][side.rookCol]
	if rook == nil || rook.Type != Rook || rook.Color != color {
		return false
	}
	for _, col := range side.between {
		if p.board[row][col] != nil {
			return false
		}
	}
	for _, col := range side.path {
		if p.IsSquareAttacked(Square{Row: row, Col: col}, color.Opponent()) {
			return false
		}
	}
	return true
}

func abs(x int) int {
	if x < 0 {
		return -x
	}
	return x
}
