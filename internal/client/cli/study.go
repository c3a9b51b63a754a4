package cli

import (
	"context"
	"fmt"
	"os"
)

// Study runs a study session over the cards matching the current filter.
// The working set is fetched once; navigation is local from then on.
//
// Session commands:
//
//	n  next card
//	p  previous card
//	r  random card
//	a  show/hide the answer
//	q  back to the main prompt
func (a *App) Study(ctx context.Context) error {
	if err := a.session.Load(ctx, a.filter); err != nil {
		a.logger.Error(ctx, "study load failed", "error", err)
		printlnFn(err.Error())
		return err
	}

	if a.session.Len() == 0 {
		printlnFn("No flashcards match the current filter.")
		return nil
	}

	printlnFn(fmt.Sprintf("Studying %d flashcards. Commands: (n)ext, (p)revious, (r)andom, (a)nswer, (q)uit", a.session.Len()))

	for {
		card, position, answerShown, ok := a.session.Current()
		if !ok {
			return nil
		}

		printlnFn(fmt.Sprintf("--- %d/%d [%s] ---", position, a.session.Len(), card.Tech))
		printlnFn("Q: " + card.Question)
		if answerShown {
			printlnFn("A: " + card.Answer)
		}

		cmd, err := getSimpleText(a.scanner, "study", os.Stdout)
		if err != nil {
			return err
		}

		switch cmd {
		case "n", "next", "":
			a.session.Next()
		case "p", "prev", "previous":
			a.session.Previous()
		case "r", "random":
			a.session.Random()
		case "a", "answer":
			a.session.ToggleAnswer()
		case "q", "quit", "exit":
			return nil
		default:
			printlnFn("Unknown command:", cmd)
		}
	}
}
