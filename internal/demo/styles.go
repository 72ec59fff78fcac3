package demo

// Title is the page title.
const Title = "tally"

// Styles is the demo stylesheet.
const Styles = `body{font-family:system-ui,sans-serif;margin:2rem;color:#222}
.section{border:1px solid #ccc;border-radius:6px;padding:0.5rem 1rem;margin:1rem 0}
.level{margin-left:1.5rem;border-left:2px solid #eee;padding-left:0.75rem}
.row{margin:0.25rem 0}
button{margin-left:0.25rem;cursor:pointer}`
