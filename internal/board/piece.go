// Package board implements the chess rules engine: an 8x8 mailbox board,
// attack detection, pseudo-legal and legal move generation, move application
// with forced queen promotion, and game status classification.
package board

// Color represents the color of a piece or player.
type Color uint8

const (
	White Color = iota
	Black
)

// Other returns the opposite color.
func (c Color) Other() Color {
	return c ^ 1
}

// String returns the color name.
func (c Color) String() string {
	if c == White {
		return "White"
	}
	return "Black"
}

// Kind represents the type of a chess piece. The zero value NoKind marks an
// empty square, so a zero Piece is empty.
type Kind uint8

const (
	NoKind Kind = iota
	Pawn
	Knight
	Bishop
	Rook
	Queen
	King
)

// String returns the kind name.
func (k Kind) String() string {
	switch k {
	case Pawn:
		return "Pawn"
	case Knight:
		return "Knight"
	case Bishop:
		return "Bishop"
	case Rook:
		return "Rook"
	case Queen:
		return "Queen"
	case King:
		return "King"
	default:
		return "None"
	}
}

// kindValue is the material value of each kind, indexed by Kind. The king is
// worth 0: it is never actually captured.
var kindValue = [7]int{0, 1, 3, 3, 5, 9, 0}

// Value returns the material value of the kind (pawn 1, knight/bishop 3,
// rook 5, queen 9, king 0).
func (k Kind) Value() int {
	return kindValue[k]
}

// Piece is a piece on the board. The zero value is an empty square.
// Pieces are immutable values; promotion replaces the pawn with a new piece.
type Piece struct {
	Color Color
	Kind  Kind
}

// NewPiece creates a piece of the given kind and color.
func NewPiece(k Kind, c Color) Piece {
	return Piece{Color: c, Kind: k}
}

// IsEmpty reports whether p marks an empty square.
func (p Piece) IsEmpty() bool {
	return p.Kind == NoKind
}

// String returns the FEN character for the piece: uppercase for white,
// lowercase for black, "." for an empty square.
func (p Piece) String() string {
	if p.IsEmpty() {
		return "."
	}
	chars := " PNBRQK"
	ch := chars[p.Kind]
	if p.Color == Black {
		ch += 'a' - 'A'
	}
	return string(ch)
}

// PieceFromChar converts a FEN character to a Piece. An unrecognized
// character yields the empty piece.
func PieceFromChar(ch byte) Piece {
	color := White
	if ch >= 'a' && ch <= 'z' {
		color = Black
		ch -= 'a' - 'A'
	}
	switch ch {
	case 'P':
		return NewPiece(Pawn, color)
	case 'N':
		return NewPiece(Knight, color)
	case 'B':
		return NewPiece(Bishop, color)
	case 'R':
		return NewPiece(Rook, color)
	case 'Q':
		return NewPiece(Queen, color)
	case 'K':
		return NewPiece(King, color)
	default:
		return Piece{}
	}
}
