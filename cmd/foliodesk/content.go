package main

// Built-in panel bodies. A config can replace these with its own panels;
// these keep a fresh install from opening onto an empty desktop.

const aboutText = `# Hi, I'm the desk owner

Welcome to my terminal desktop. Every panel here is a window: drag it by
its title bar, fling it against the left or right edge to snap it into a
half-screen slot, or press the **□** control to center it again.

- **×** and **−** close a panel
- **□** centers it
- Drag near an edge and the snap zone lights up

Close everything and the desk tells you how to get it back.`

const projectsText = `# Projects

## foliodesk
This very desktop. A window manager for panels in your terminal, with
snap slots, animated transitions, and a contribution heatmap.

## folio-heatmap
A standalone renderer for the contribution heatmap, for embedding in
shell prompts and CI summaries.

## Older work
Open the console (backtick) and run ` + "`windows`" + ` to see what else
is lying around the desk.`
