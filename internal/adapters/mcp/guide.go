package mcp

// SyntaxGuide is the static document served as mermaid://syntax-guide and by
// the `guide` CLI command. It shows a minimal valid snippet for every
// diagram family the validator accepts.
const SyntaxGuide = `# Mermaid Syntax Guide

Common Mermaid diagram types and minimal examples.

## Flowchart

` + "```mermaid" + `
flowchart TD
    A[Start] --> B{Decision}
    B -->|Yes| C[Process]
    B -->|No| D[End]
` + "```" + `

## Sequence Diagram

` + "```mermaid" + `
sequenceDiagram
    participant A as Alice
    participant B as Bob
    A->>B: Hello Bob, how are you?
    B-->>A: Great!
` + "```" + `

## Class Diagram

` + "```mermaid" + `
classDiagram
    class Animal {
        +String name
        +eat()
    }
    Animal <|-- Dog
` + "```" + `

## State Diagram

` + "```mermaid" + `
stateDiagram-v2
    [*] --> Still
    Still --> [*]
    Still --> Moving
` + "```" + `

## Entity Relationship Diagram

` + "```mermaid" + `
erDiagram
    CUSTOMER ||--o{ ORDER : places
    ORDER ||--|{ LINE-ITEM : contains
` + "```" + `

## User Journey

` + "```mermaid" + `
journey
    title My working day
    section Go to work
      Make tea: 5: Me
      Do work: 3: Me
` + "```" + `

## Gantt Chart

` + "```mermaid" + `
gantt
    title Project Plan
    dateFormat YYYY-MM-DD
    section Phase 1
      Design : a1, 2024-01-01, 10d
      Build  : after a1, 20d
` + "```" + `

## Pie Chart

` + "```mermaid" + `
pie title Pets adopted
    "Dogs" : 386
    "Cats" : 85
` + "```" + `

## Git Graph

` + "```mermaid" + `
gitGraph
    commit
    branch develop
    commit
    checkout main
    merge develop
` + "```" + `

## Mindmap

` + "```mermaid" + `
mindmap
  root((mermaid))
    Diagrams
      Flowchart
      Sequence
` + "```" + `

## Timeline

` + "```mermaid" + `
timeline
    title History of the project
    2022 : First release
    2023 : Rewrite
` + "```" + `

## Quadrant Chart

` + "```mermaid" + `
quadrantChart
    title Reach and engagement
    x-axis Low Reach --> High Reach
    y-axis Low Engagement --> High Engagement
    Campaign A: [0.3, 0.6]
` + "```" + `

For the full syntax, visit https://mermaid.js.org/
`
