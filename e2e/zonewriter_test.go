package e2e_test

import (
	"os"
	"path/filepath"

	. "github.com/onsi/ginkgo/v2"
	. "github.com/onsi/gomega"
)

const statusLine = "doing python things\n"

var _ = Describe("Zonewriter E2E Tests", func() {
	var dir string

	BeforeEach(func() {
		dir = createTempDir()
	})

	Describe("Routing", func() {
		It("should append to second and third output for two files", func() {
			res := runZonewriter(dir, "--num-files", "2", "--zone", "us-east-1")
			Expect(res.ExitCode).To(Equal(0))
			Expect(res.Stdout).To(Equal(statusLine))

			second, ok := outputFile(dir, "second_out.txt")
			Expect(ok).To(BeTrue())
			Expect(second).To(Equal("us-east-1"))

			third, ok := outputFile(dir, "third_out.txt")
			Expect(ok).To(BeTrue())
			Expect(third).To(Equal("us-east-1"))

			_, ok = outputFile(dir, "first_out.txt")
			Expect(ok).To(BeFalse())
		})

		It("should append to first output for any other count", func() {
			res := runZonewriter(dir, "--num-files", "5", "--zone", "eu-west-2")
			Expect(res.ExitCode).To(Equal(0))
			Expect(res.Stdout).To(Equal(statusLine))

			first, ok := outputFile(dir, "first_out.txt")
			Expect(ok).To(BeTrue())
			Expect(first).To(Equal("eu-west-2"))

			for _, name := range []string{"second_out.txt", "third_out.txt"} {
				_, ok := outputFile(dir, name)
				Expect(ok).To(BeFalse(), name)
			}
		})

		It("should treat zero and negative counts like any other", func() {
			for _, n := range []string{"0", "-2", "3"} {
				res := runZonewriter(dir, "--num-files", n, "--zone", "z")
				Expect(res.ExitCode).To(Equal(0), res.Stderr)
			}

			first, _ := outputFile(dir, "first_out.txt")
			Expect(first).To(Equal("zzz"))
		})
	})

	Describe("Appending", func() {
		It("should accumulate across invocations", func() {
			for i := 0; i < 2; i++ {
				res := runZonewriter(dir, "--num-files", "1", "--zone", "ap-south-1")
				Expect(res.ExitCode).To(Equal(0))
			}

			first, _ := outputFile(dir, "first_out.txt")
			Expect(first).To(Equal("ap-south-1ap-south-1"))
		})

		It("should keep content written by others", func() {
			Expect(os.WriteFile(filepath.Join(dir, "second_out.txt"), []byte("existing\n"), 0644)).To(Succeed())

			res := runZonewriter(dir, "--num-files", "2", "--zone", "us-east-1")
			Expect(res.ExitCode).To(Equal(0))

			second, _ := outputFile(dir, "second_out.txt")
			Expect(second).To(Equal("existing\nus-east-1"))
		})
	})

	Describe("Usage errors", func() {
		DescribeTable("should exit non-zero without touching files",
			func(args ...string) {
				res := runZonewriter(dir, args...)
				Expect(res.ExitCode).To(Equal(2))
				Expect(res.Stdout).To(BeEmpty())
				Expect(res.Stderr).To(ContainSubstring("error:"))

				entries, err := os.ReadDir(dir)
				Expect(err).NotTo(HaveOccurred())
				Expect(entries).To(BeEmpty())
			},
			Entry("missing zone", "--num-files", "2"),
			Entry("missing num-files", "--zone", "us-east-1"),
			Entry("no flags"),
			Entry("non-integer num-files", "--num-files", "abc", "--zone", "us-east-1"),
			Entry("positional argument", "--num-files", "2", "--zone", "z", "extra"),
		)
	})

	Describe("Filesystem errors", func() {
		It("should exit with failure when the output cannot be opened", func() {
			if os.Geteuid() == 0 {
				Skip("root ignores directory permissions")
			}

			Expect(os.Chmod(dir, 0555)).To(Succeed())
			DeferCleanup(os.Chmod, dir, os.FileMode(0755))

			res := runZonewriter(dir, "--num-files", "7", "--zone", "z")
			Expect(res.ExitCode).To(Equal(1))
			Expect(res.Stdout).To(Equal(statusLine))
			Expect(res.Stderr).To(ContainSubstring("level=ERROR"))
			Expect(res.Stderr).To(ContainSubstring("first_out.txt"))
		})
	})
})
