package fa_test

import (
	"fmt"

	"github.com/geange/fa"
)

func Example() {
	n := fa.NewNFA(fa.AlphabetOf("ab"))
	n.SetStartState(0)
	_ = n.AddTransition(0, 1, 'a')
	_ = n.AddTransition(1, 1, 'b')
	_ = n.AddTransition(1, 0, fa.Epsilon)
	n.AddTerminalState(1)

	d, err := fa.Convert(n)
	if err != nil {
		panic(err)
	}
	fmt.Println(d.NumStates(), fa.Run(d, "abab"), fa.Run(d, "ba"))
	// Output: 3 true false
}

func ExampleDFA_FindNotEqWord() {
	alphabet := fa.AlphabetOf("ab")
	a, _ := fa.NewAutomata().MakeString(alphabet, fa.Word("ab"))
	b := fa.NewAutomata().MakeAnyString(alphabet)

	word, found, _ := a.FindNotEqWord(b)
	fmt.Println(found, fa.FormatWord(word))
	// Output: true eps
}
