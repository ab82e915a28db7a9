// Command textkit exposes the textkit packages on the command line.
//
//	textkit len "👍🏽👍"                  # 2
//	textkit slice hello -3 -1            # ll
//	textkit reverse "👍🏽👍"              # 👍👍🏽
//	textkit segment "é🇺🇸"                # table of clusters
//	textkit distance kitten sitting      # 3
//	textkit score hello hallo            # 0.8
//	textkit closest colr cool colour color --threshold 0.5
//	textkit normalize --form nfd "é"
//	textkit slug "Crème brûlée" --max 10
//	textkit sort --locale de zebra äpfel birne
//
// Passing "-" as the text argument reads it from stdin. Results are printed
// as plain text by default, or as JSON or YAML with --output.
//
// Configuration comes from the environment (or a .env file):
//
//	TEXTKIT_OUTPUT      text, json or yaml (default text)
//	TEXTKIT_LOG_LEVEL   debug, info, warn or error (default warn)
//	TEXTKIT_LOG_FORMAT  text or json (default text on a terminal, json otherwise)
//	TEXTKIT_LOCALE      BCP 47 tag used by sort (default en)
package main
