package records

// Canonical field names used by template schemas. Uploaded datasets rarely
// agree on key names, so each canonical field carries an ordered alias
// list - first alias present with a non-empty value wins.
const (
	FieldName        = "fullName"
	FieldID          = "id"
	FieldDepartment  = "department"
	FieldDesignation = "designation"
	FieldGender      = "gender"
	FieldDateOfBirth = "dateOfBirth"
	FieldJoinDate    = "dateOfJoining"
	FieldFatherName  = "fatherName"
	FieldMotherName  = "motherName"
	FieldParentName  = "parentName"
	FieldPersonType  = "personType"
	FieldCourse      = "course"
	FieldRollNumber  = "rollNumber"
)

// NameAliases is ordered by how often each spelling shows up in real
// uploads. Order matters: the normalizer takes the first hit.
var NameAliases = []string{
	"name", "fullName", "full_name", "employeeName", "studentName",
	"Name", "FullName", "FULL NAME", "Full Name", "full name",
}

var IDAliases = []string{
	"id", "employeeId", "employee_id", "studentId", "student_id",
	"empId", "emp_id", "rollNo", "roll_no", "ID", "EmployeeID",
	"StudentID", "Employee ID", "Student ID", "Roll No",
}

var DepartmentAliases = []string{
	"department", "dept", "Department", "DEPARTMENT", "branch",
	"Branch", "division", "Division", "class", "Class",
}

var aliasTable = map[string][]string{
	FieldName:        NameAliases,
	FieldID:          IDAliases,
	FieldDepartment:  DepartmentAliases,
	FieldDesignation: {"designation", "Designation", "jobTitle", "job_title", "position", "Position", "role", "Role", "title", "Title"},
	FieldGender:      {"gender", "Gender", "sex", "Sex"},
	FieldDateOfBirth: {"dateOfBirth", "date_of_birth", "dob", "DOB", "Dob", "birthDate", "birth_date", "Date of Birth", "DateOfBirth"},
	FieldJoinDate:    {"dateOfJoining", "date_of_joining", "joiningDate", "joining_date", "doj", "DOJ", "Date of Joining", "admissionDate", "admission_date", "Date of Admission"},
	FieldFatherName:  {"fatherName", "father_name", "Father Name", "FatherName", "father", "Father"},
	FieldMotherName:  {"motherName", "mother_name", "Mother Name", "MotherName", "mother", "Mother"},
	FieldParentName:  {"parentName", "parent_name", "Parent Name", "guardianName", "guardian_name", "Guardian Name"},
	FieldPersonType:  {"personType", "person_type", "type", "Type", "category", "Category"},
	FieldCourse:      {"course", "Course", "program", "Program", "stream", "Stream"},
	FieldRollNumber:  {"rollNumber", "roll_number", "rollNo", "roll_no", "Roll Number", "Roll No", "admissionNo", "admission_no"},
}

// Aliases returns the ordered alias list for a canonical field,
// or nil when the field has no known aliases.
func Aliases(canonical string) []string {
	return aliasTable[canonical]
}
