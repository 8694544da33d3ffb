package legalserver

// SystemInstructionNoContextForTesting exposes the unexported no-context
// system instruction to the external test package.
var SystemInstructionNoContextForTesting = systemInstructionNoContext
