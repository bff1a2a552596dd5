package workload

import "debug/elf"

var seWorkloads = map[elf.Machine]string{
	elf.EM_AARCH64: "ArmEmuLinux",
	elf.EM_ARM:     "ArmEmuLinux",
	elf.EM_X86_64:  "X86EmuLinux",
	elf.EM_386:     "X86EmuLinux",
	elf.EM_RISCV:   "RiscvEmuLinux",
}

// ProbeSEWorkload returns the syscall-emulation workload that can run the
// binary, judged by the machine type in its ELF header. It returns an empty
// string if the file is not an ELF file or the machine is not known.
func ProbeSEWorkload(path string) string {
	f, err := elf.Open(path)
	if err != nil {
		return ""
	}
	defer f.Close()

	return seWorkloads[f.Machine]
}
