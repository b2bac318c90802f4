package docs

var topics = []Topic{
	{
		Name:    "quickstart",
		Title:   "Quick Start",
		Summary: "Getting started with sitesmith",
		Content: topicQuickstart,
	},
	{
		Name:    "formats",
		Title:   "Recognized Input Formats",
		Summary: "The section format and its markdown fallbacks",
		Content: topicFormats,
	},
	{
		Name:    "config",
		Title:   "Configuration Reference",
		Summary: "Config file schema, fields, and defaults",
		Content: topicConfig,
	},
	{
		Name:    "safety",
		Title:   "Path Safety",
		Summary: "How unsafe paths in generated text are handled",
		Content: topicSafety,
	},
	{
		Name:    "report",
		Title:   "Run Reports",
		Summary: "Structure of .sitesmith/report.json",
		Content: topicReport,
	},
}

const topicQuickstart = `Quick Start
===========

1. (Optional) Initialize a project:

    cd your-site
    sitesmith init

   This creates .sitesmith/config.yaml and an example response file.
   Without it, unpack uses built-in defaults and writes to the current
   directory.

2. Save the generated text you want to unpack, then preview:

    sitesmith unpack response.txt --dry-run

3. Unpack for real:

    sitesmith unpack response.txt

   Or pipe the text in directly:

    some-generator | sitesmith unpack

4. Inspect the last run:

    sitesmith status
    sitesmith doctor
`

const topicFormats = `Recognized Input Formats
========================

sitesmith extracts named files from a single blob of generated text. It
tries three recognition strategies in priority order and uses the first
one that finds anything; it never tries to merge results across
strategies.

1. sections — the format generators are asked to use:

    === index.html ===
    <!doctype html>
    ...

    === style.css ===
    body { ... }

   Text before the first marker is treated as preamble and dropped.
   A code fence directly inside a section (with or without a language
   tag) is stripped. If the same filename appears twice, the later
   section wins.

2. headings — markdown headings naming a file, followed by a fenced
   code block:

    ### index.html
    ` + "```html" + `
    ...
    ` + "```" + `

3. labels — a bold filename followed by a fenced code block:

    **main.js**
    ` + "```js" + `
    ...
    ` + "```" + `

If nothing matches, the entire response is saved verbatim under the
configured default-file (index.html unless changed) and a warning is
printed. A run therefore always produces at least one file.
`

const topicConfig = `Configuration Reference
=======================

sitesmith looks for .sitesmith/config.yaml, walking up from the current
directory. Every field is optional; built-in defaults apply when the
file is absent entirely.

Fields:

  name            Project name. Informational.

  output-root     Directory extracted files are written to, relative to
                  the project root. Default: "." (the project root).

  default-file    Filename used when no file sections are recognized
                  and the whole response is kept as one document.
                  Must be a safe relative path. Default: index.html

  strategies      Subset (and order) of recognition strategies to use:
                  sections, headings, labels. Default: all three, in
                  that order.

  report-dir      Where report.json is written, relative to the project
                  root. Default: .sitesmith
`

const topicSafety = `Path Safety
===========

Filenames inside generated text are untrusted input. Before writing,
each extracted path is normalized ("." and ".." segments resolved,
separators unified) without touching the filesystem, then checked
against the output root:

  - absolute paths are rejected
  - paths that still point at a parent after normalization (such as
    ../../etc/passwd) are rejected

Rejected entries are reported as skipped — the run continues with the
remaining files, and nothing is ever written outside the output root.

Interior ".." segments that stay inside the root are fine:
css/../style.css is written as style.css.

Subdirectories named by safe paths (images/logo.svg) are created as
needed.
`

const topicReport = `Run Reports
===========

Every unpack run (except --dry-run) writes .sitesmith/report.json
describing what happened, one outcome per extracted file:

  {
    "run_id": "0f0e...",
    "source": "response.txt",
    "output_root": ".",
    "strategy": "sections",
    "fallback": false,
    "outcomes": [
      {"path": "index.html", "status": "written", "chars": 1423},
      {"path": "../x", "status": "skipped", "reason": "unsafe path"}
    ],
    "written": 1, "skipped": 1, "failed": 0
  }

The file is written atomically and overwritten on each run.
'sitesmith status' renders it; 'sitesmith doctor' explains skips and
failures and checks the output root.
`
