package textfmt

// Package textfmt shapes display strings for the big screen: it binds short
// Polish connector words to the following word with a non-breaking space,
// moves trailing parenthesized segments onto their own line, and emphasizes
// the word "Olimpiada". Output carries the same lightweight markup the
// slide views understand (<br>, <b>…</b>).
