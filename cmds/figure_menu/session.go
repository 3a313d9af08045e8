package main

import (
	"bufio"
	"fmt"
	"io"
	"strconv"
	"strings"

	"github.com/pkg/errors"
	"github.com/samber/lo"
	"github.com/sanity-io/litter"
	"github.com/sirupsen/logrus"
	"github.com/unixpickle/figures/figures"
	"golang.org/x/text/message"
)

const menuText = `
Menu:
1. Add triangle
2. Add square
3. Add rectangle
4. Print all figures
5. Compute total area
6. Print centers
7. Erase figure by index
8. Show size and capacity
9. Array template demo
10. Dump array state
0. Exit
`

// A Session runs the interactive menu over a figure array.
type Session struct {
	Figures *figures.Array[figures.Figure[float64]]

	in      *bufio.Scanner
	out     io.Writer
	printer *message.Printer
	log     logrus.FieldLogger
}

func NewSession(in io.Reader, out io.Writer, printer *message.Printer, log logrus.FieldLogger,
	capacity int) *Session {
	scanner := bufio.NewScanner(in)
	scanner.Split(bufio.ScanWords)
	return &Session{
		Figures: figures.NewArray[figures.Figure[float64]](capacity),
		in:      scanner,
		out:     out,
		printer: printer,
		log:     log,
	}
}

// Run shows the menu until the user exits or the input ends.
func (s *Session) Run() error {
	for {
		fmt.Fprint(s.out, menuText)
		choice, err := s.readInt("Choose a menu item: ")
		if err == io.EOF {
			s.log.Debug("input closed")
			return nil
		} else if err != nil {
			return err
		}
		if choice == 0 {
			fmt.Fprintln(s.out, "Goodbye.")
			return nil
		}
		if err := s.handle(choice); err == io.EOF {
			return nil
		} else if err != nil {
			s.log.WithFields(logrus.Fields{
				"choice": choice,
				"size":   s.Figures.Len(),
			}).WithError(err).Warn("operation rejected")
			fmt.Fprintln(s.out, "Error:", err)
		}
	}
}

func (s *Session) handle(choice int) error {
	switch choice {
	case 1:
		return s.addFigure("Triangle", s.readTriangle)
	case 2:
		return s.addFigure("Square", s.readSquare)
	case 3:
		return s.addFigure("Rectangle", s.readRectangle)
	case 4:
		s.printFigures()
	case 5:
		s.printer.Fprintf(s.out, "Total area = %.3f\n", figures.TotalArea(s.Figures))
	case 6:
		s.printCenters()
	case 7:
		if s.Figures.Empty() {
			fmt.Fprintln(s.out, "The array is empty.")
			return nil
		}
		index, err := s.readInt("Enter the index to erase: ")
		if err != nil {
			return err
		}
		if err := s.Figures.Erase(index); err != nil {
			return err
		}
		fmt.Fprintln(s.out, "Figure erased.")
		s.log.WithField("index", index).Debug("erased figure")
	case 8:
		s.printer.Fprintf(s.out, "Size = %d, capacity = %d\n", s.Figures.Len(), s.Figures.Cap())
	case 9:
		return s.demonstrateArrays()
	case 10:
		fmt.Fprintln(s.out, litter.Sdump(s.Figures.Slice()))
	default:
		fmt.Fprintln(s.out, "Unknown menu item.")
	}
	return nil
}

func (s *Session) addFigure(name string, read func() (figures.Figure[float64], error)) error {
	f, err := read()
	if err != nil {
		return err
	}
	s.Figures.PushBack(f)
	fmt.Fprintf(s.out, "%s added.\n", name)
	s.log.WithFields(logrus.Fields{
		"figure":   f.Name(),
		"size":     s.Figures.Len(),
		"capacity": s.Figures.Cap(),
	}).Debug("added figure")
	return nil
}

func (s *Session) readTriangle() (figures.Figure[float64], error) {
	center, err := s.readPoint("Enter the center of the triangle")
	if err != nil {
		return nil, err
	}
	base, err := s.readFloat("Enter the base width: ")
	if err != nil {
		return nil, err
	}
	height, err := s.readFloat("Enter the height: ")
	if err != nil {
		return nil, err
	}
	return nilOnError(figures.NewTriangleCentered(center, base, height))
}

func (s *Session) readSquare() (figures.Figure[float64], error) {
	center, err := s.readPoint("Enter the center of the square")
	if err != nil {
		return nil, err
	}
	side, err := s.readFloat("Enter the side length: ")
	if err != nil {
		return nil, err
	}
	return nilOnError(figures.NewSquare(center, side))
}

func (s *Session) readRectangle() (figures.Figure[float64], error) {
	center, err := s.readPoint("Enter the center of the rectangle")
	if err != nil {
		return nil, err
	}
	width, err := s.readFloat("Enter the width: ")
	if err != nil {
		return nil, err
	}
	height, err := s.readFloat("Enter the height: ")
	if err != nil {
		return nil, err
	}
	return nilOnError(figures.NewRectangle(center, width, height))
}

func (s *Session) printFigures() {
	if s.Figures.Empty() {
		fmt.Fprintln(s.out, "The figure array is empty.")
		return
	}
	lines := lo.Map(s.Figures.Slice(), func(f figures.Figure[float64], i int) string {
		if f == nil {
			return fmt.Sprintf("%d: <empty>", i)
		}
		return fmt.Sprintf("%d: %s", i, f)
	})
	fmt.Fprintln(s.out, strings.Join(lines, "\n"))
}

func (s *Session) printCenters() {
	if s.Figures.Empty() {
		fmt.Fprintln(s.out, "The figure array is empty.")
		return
	}
	for i, f := range s.Figures.All() {
		if f == nil {
			fmt.Fprintf(s.out, "%d: <empty>\n", i)
			continue
		}
		fmt.Fprintf(s.out, "%d: center = %s, area = %s\n", i, f.Center(),
			strconv.FormatFloat(f.Area(), 'g', 6, 64))
	}
}

// demonstrateArrays shows that Array works with polymorphic figure
// handles and with figure values constructed in place.
func (s *Session) demonstrateArrays() error {
	tri, err := figures.NewTriangleCentered(figures.XY(0, 0), 4, 6)
	if err != nil {
		return err
	}
	var handles figures.Array[figures.Figure[int]]
	handles.PushBack(tri)

	sq, err := figures.NewSquare(figures.XY(0, 0), 4)
	if err != nil {
		return err
	}
	var squares figures.Array[figures.Square[int]]
	squares.EmplaceBack(func(slot *figures.Square[int]) {
		*slot = *sq
	})
	first, err := squares.Front()
	if err != nil {
		return err
	}

	fmt.Fprintf(s.out, "Array[Figure[int]]: size = %d\n", handles.Len())
	fmt.Fprintf(s.out, "Array[Square[int]]: area of first figure = %s\n",
		strconv.FormatFloat(first.Area(), 'g', 6, 64))
	return nil
}

func (s *Session) readPoint(prompt string) (figures.Point[float64], error) {
	fmt.Fprintln(s.out, prompt)
	x, err := s.readFloat("  x: ")
	if err != nil {
		return figures.Point[float64]{}, err
	}
	y, err := s.readFloat("  y: ")
	if err != nil {
		return figures.Point[float64]{}, err
	}
	return figures.XY(x, y), nil
}

func (s *Session) readFloat(prompt string) (float64, error) {
	return readValue(s, prompt, func(token string) (float64, error) {
		return strconv.ParseFloat(token, 64)
	})
}

func (s *Session) readInt(prompt string) (int, error) {
	return readValue(s, prompt, strconv.Atoi)
}

// readValue prompts until a token parses successfully, returning io.EOF
// once the input is exhausted.
func readValue[T any](s *Session, prompt string, parse func(string) (T, error)) (T, error) {
	for {
		fmt.Fprint(s.out, prompt)
		if !s.in.Scan() {
			var zero T
			if err := s.in.Err(); err != nil {
				return zero, errors.Wrap(err, "read input")
			}
			return zero, io.EOF
		}
		token := s.in.Text()
		if v, err := parse(token); err == nil {
			return v, nil
		}
		s.log.WithField("token", token).Debug("invalid input")
		fmt.Fprintln(s.out, "Invalid input. Try again.")
	}
}

func nilOnError[F figures.Figure[float64]](f F, err error) (figures.Figure[float64], error) {
	if err != nil {
		return nil, err
	}
	return f, nil
}
