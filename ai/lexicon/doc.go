// Package lexicon provides an English implementation of ai.Tokenizer.
//
// Words are split on Unicode letter and digit boundaries after NFKC folding.
// Lexical classes come from the prose part-of-speech tagger, whose Penn
// Treebank tags are folded into ai.LexicalClass, and lemmas come from the
// golem English dictionary. Both models ship inside their modules, so no
// files need to be installed.
package lexicon
