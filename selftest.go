package main

import "fmt"

// selfTestCase pairs a wire version with a label for self-test output.
type selfTestCase struct {
	name string
	v    Version
}

// runSelfTest exercises an encrypt/decrypt round trip against all
// three wire versions, matching the reference implementation's `test`
// subcommand but extended beyond its V3-only coverage.
func runSelfTest() int {
	const mnemonic = "cat dog fish bird"
	const password = "MySecre!Password123"

	cases := []selfTestCase{
		{"V1", V1},
		{"V2", V2},
		{"V3", V3},
	}

	fmt.Println("--- Darkstar Self-Test ---")
	allPassed := true
	for _, tc := range cases {
		res, err := Encrypt(mnemonic, password, tc.v)
		if err != nil {
			fmt.Printf("%s: encrypt failed: %v\n", tc.name, err)
			allPassed = false
			continue
		}

		decrypted, err := Decrypt(res.EncryptedData, res.ReverseKey, password)
		if err != nil {
			fmt.Printf("%s: decrypt failed: %v\n", tc.name, err)
			allPassed = false
			continue
		}

		fmt.Printf("%s: Decrypted: %q\n", tc.name, decrypted)
		if decrypted == mnemonic {
			fmt.Printf("%s: Result: PASSED\n", tc.name)
		} else {
			fmt.Printf("%s: Result: FAILED\n", tc.name)
			allPassed = false
		}
	}

	if !allPassed {
		return 1
	}
	return 0
}
