// Package commands defines the deckflow CLI and wires dependencies for
// subcommands.
//
// Commands
//
//   - topic      Generate a deck with an exact slide count on a topic
//   - paragraph  Generate a deck from free text (flag, file or stdin prompt)
//   - watch      Turn .txt/.md files dropped into the inbox into decks
//   - schedule   Run the topic decks configured under schedule.jobs
//
// Running deckflow without a subcommand on a terminal asks for the mode,
// the topic or text and the slide count.
//
// # Implementation
//
// The root command loads the YAML config and the .env file, then builds the
// LLM client, image fetcher, renderer, speech, video and publish layers into
// one pipeline before any subcommand runs.
package commands
