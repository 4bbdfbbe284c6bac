package logging

// FieldTag is the structured field carrying the resolved tag.
const FieldTag = "tag"
